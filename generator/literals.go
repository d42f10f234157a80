package generator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/pycraft/pycraft/nodes"
)

func constant(c *nodes.Constant) (string, int) {
	switch v := c.Value.(type) {
	case nil:
		return "None", precAtom
	case bool:
		if v {
			return "True", precAtom
		}
		return "False", precAtom
	case string:
		return c.Kind + quote(v), precAtom
	case []byte:
		return "b" + quoteBytes(v), precAtom
	case float64:
		return signed(formatFloat(v, 64))
	case float32:
		return signed(formatFloat(float64(v), 32))
	case decimal.Decimal:
		return signed(v.String())
	case *decimal.Decimal:
		if v == nil {
			return "None", precAtom
		}
		return signed(v.String())
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return signed(fmt.Sprint(v))
	default:
		return fmt.Sprint(v), precAtom
	}
}

// signed reports a negative literal as a unary expression so it is parenthesized where
// a unary minus would be.
func signed(text string) (string, int) {
	if strings.HasPrefix(text, "-") {
		return text, precUnary
	}
	return text, precAtom
}

// formatFloat renders f the way Python's repr does: the shortest round-tripping digits,
// positional notation with a trailing ".0" for magnitudes in [1e-4, 1e16) and scientific
// notation otherwise.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "float('nan')"
	case math.IsInf(f, 1):
		return "float('inf')"
	case math.IsInf(f, -1):
		return "-float('inf')"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, bitSize)
	}
	text := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.ContainsRune(text, '.') {
		text += ".0"
	}
	return text
}

// quoteChar picks single quotes unless the text contains a single quote and no double quote.
func quoteChar(hasSingle, hasDouble bool) byte {
	if hasSingle && !hasDouble {
		return '"'
	}
	return '\''
}

// quote returns s as a Python string literal.
func quote(s string) string {
	q := quoteChar(strings.ContainsRune(s, '\''), strings.ContainsRune(s, '"'))

	var b strings.Builder
	b.WriteByte(q)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			fmt.Fprintf(&b, `\x%02x`, s[i])
			i++
			continue
		}
		i += size

		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(q):
			b.WriteByte('\\')
			b.WriteByte(q)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x80 && (r < 0x20 || r == 0x7f):
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x80 || unicode.IsPrint(r):
			b.WriteRune(r)
		case r <= 0xff:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r <= 0xffff:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteByte(q)
	return b.String()
}

// quoteBytes returns bs as the quoted part of a Python bytes literal.
func quoteBytes(bs []byte) string {
	s := string(bs)
	q := quoteChar(strings.ContainsRune(s, '\''), strings.ContainsRune(s, '"'))

	var b strings.Builder
	b.WriteByte(q)
	for _, c := range bs {
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c == q:
			b.WriteByte('\\')
			b.WriteByte(q)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c < 0x20 || c >= 0x7f:
			fmt.Fprintf(&b, `\x%02x`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(q)
	return b.String()
}
