// Package generator renders syntax trees built from the nodes package into formatted
// Python source text.
package generator

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pycraft/pycraft/nodes"
)

// DefaultIndent is the indentation unit used when none is configured.
const DefaultIndent = "\t"

// ErrMissingFileName is returned by Generate when a file mode is requested without a file name.
var ErrMissingFileName = errors.New("a file name is required when writing to a file")

// Source is anything that exposes an ordered top-level node sequence, such as a
// builder.Builder or a nodes.Module.
type Source interface {
	Nodes() []nodes.Node
}

// Mode selects what Generate does with the rendered text.
type Mode uint8

const (
	// ModeString only returns the text.
	ModeString Mode = iota
	// ModeConsole returns the text and echoes it to the console writer.
	ModeConsole
	// ModeFile writes the text to Output.FileName under Output.Dir.
	ModeFile
	// ModeFileConsole writes the file and echoes the text.
	ModeFileConsole
)

func (m Mode) String() string {
	switch m {
	case ModeString:
		return "string"
	case ModeConsole:
		return "console"
	case ModeFile:
		return "file"
	case ModeFileConsole:
		return "file+console"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

func (m Mode) writesFile() bool { return m == ModeFile || m == ModeFileConsole }
func (m Mode) echoes() bool     { return m == ModeConsole || m == ModeFileConsole }

// Output configures where Generate sends the rendered text.
type Output struct {
	Mode     Mode
	FileName string
	// Dir is the directory FileName is written under. Defaults to ".".
	Dir string
}

// Path returns the file the output is written to.
func (o Output) Path() string {
	dir := o.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, o.FileName)
}

// Generator renders nodes to text. The zero value is not usable; create one with New.
//
// A Generator holds no per-render state and may be reused, but it is not safe for
// concurrent use while its console writer is shared.
type Generator struct {
	indent  string
	console io.Writer
}

type Option func(*Generator)

// WithIndent sets the indentation unit repeated once per nesting level.
func WithIndent(unit string) Option {
	return func(g *Generator) {
		g.indent = unit
	}
}

// WithConsole sets the writer used by the echoing modes. Defaults to os.Stdout.
func WithConsole(w io.Writer) Option {
	return func(g *Generator) {
		g.console = w
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{
		indent:  DefaultIndent,
		console: os.Stdout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Render renders a statement sequence at depth zero. Lines are joined with a newline and
// the result has no trailing newline.
func (g *Generator) Render(ns []nodes.Node) string {
	p := g.printer()
	p.stmts(ns)
	return p.String()
}

// RenderNode renders a single node. Statements render as lines at depth zero, anything
// else renders as an inline expression fragment.
func (g *Generator) RenderNode(n nodes.Node) string {
	p := g.printer()
	if e, ok := n.(nodes.Expr); ok {
		if _, isStmt := n.(nodes.Stmt); !isStmt {
			return p.expr(e)
		}
	}
	p.stmt(n)
	return p.String()
}

// RenderExpr renders e as a single-line fragment with no indentation.
func (g *Generator) RenderExpr(e nodes.Expr) string {
	return g.printer().expr(e)
}

// Generate renders src and delivers the text according to out. The text is returned in
// every mode.
func (g *Generator) Generate(src Source, out Output) (string, error) {
	if out.Mode.writesFile() && out.FileName == "" {
		return "", ErrMissingFileName
	}

	code := g.Render(src.Nodes())

	if out.Mode.writesFile() {
		err := os.WriteFile(out.Path(), []byte(code), 0o644)
		if err != nil {
			return code, fmt.Errorf("failed to write %s: %w", out.Path(), err)
		}
	}
	if out.Mode.echoes() && g.console != nil {
		_, err := fmt.Fprintln(g.console, code)
		if err != nil {
			return code, fmt.Errorf("failed to echo generated code: %w", err)
		}
	}
	return code, nil
}

func (g *Generator) printer() *printer {
	return &printer{unit: g.indent}
}

// printer accumulates rendered lines at a tracked depth.
type printer struct {
	unit  string
	depth int
	lines []string
}

func (p *printer) line(text string) {
	p.lines = append(p.lines, strings.Repeat(p.unit, p.depth)+text)
}

func (p *printer) withIndent(fn func()) {
	p.depth++
	defer func() { p.depth-- }()
	fn()
}

func (p *printer) String() string {
	return strings.Join(p.lines, "\n")
}
