package generator

import (
	"strings"

	"github.com/pycraft/pycraft/nodes"
)

// Binding strength of expression forms, loosest first.
const (
	precLowest = iota
	precNamed
	precLambda
	precIfExp
	precOr
	precAnd
	precNot
	precCompare
	precBitOr
	precBitXor
	precBitAnd
	precShift
	precArith
	precTerm
	precUnary
	precPower
	precAwait
	precAtom
)

var binaryPrec = map[nodes.Op]int{
	nodes.BitOr:    precBitOr,
	nodes.BitXor:   precBitXor,
	nodes.BitAnd:   precBitAnd,
	nodes.LShift:   precShift,
	nodes.RShift:   precShift,
	nodes.Add:      precArith,
	nodes.Sub:      precArith,
	nodes.Mult:     precTerm,
	nodes.Div:      precTerm,
	nodes.FloorDiv: precTerm,
	nodes.Mod:      precTerm,
	nodes.MatMult:  precTerm,
	nodes.Pow:      precPower,
}

func (p *printer) expr(e nodes.Expr) string {
	text, _ := p.exprPrec(e)
	return text
}

// operand renders e, parenthesized when it binds looser than minPrec.
func (p *printer) operand(e nodes.Expr, minPrec int) string {
	text, prec := p.exprPrec(e)
	if prec < minPrec {
		return "(" + text + ")"
	}
	return text
}

func (p *printer) exprs(es []nodes.Expr, minPrec int) string {
	parts := make([]string, 0, len(es))
	for _, e := range es {
		parts = append(parts, p.operand(e, minPrec))
	}
	return strings.Join(parts, ", ")
}

// exprList renders e where an unparenthesized tuple is allowed, such as a return value
// or the right side of an assignment.
func (p *printer) exprList(e nodes.Expr) string {
	t, ok := e.(*nodes.Tuple)
	if !ok || len(t.Elts) == 0 {
		return p.expr(e)
	}
	if len(t.Elts) == 1 {
		return p.operand(t.Elts[0], precNamed) + ","
	}
	return p.exprs(t.Elts, precNamed)
}

// target renders an assignment or loop target.
func (p *printer) target(e nodes.Expr) string {
	return p.exprList(e)
}

// exprPrec renders e and reports how tightly the result binds.
func (p *printer) exprPrec(e nodes.Expr) (string, int) {
	if isNil(e) {
		return "", precAtom
	}
	switch e := e.(type) {
	case *nodes.Name:
		return e.ID, precAtom
	case *nodes.Constant:
		return constant(e)
	case *nodes.Attribute:
		value := p.operand(e.Value, precAtom)
		if _, ok := e.Value.(*nodes.Constant); ok && isDigits(value) {
			// 1.real would lex as a float
			value = "(" + value + ")"
		}
		return value + "." + e.Attr, precAtom
	case *nodes.Subscript:
		return p.operand(e.Value, precAtom) + "[" + p.subscript(e.Slice) + "]", precAtom
	case *nodes.Slice:
		text := p.sliceBound(e.Lower) + ":" + p.sliceBound(e.Upper)
		if e.Step != nil {
			text += ":" + p.sliceBound(e.Step)
		}
		return text, precAtom
	case *nodes.Call:
		parts := make([]string, 0, len(e.Args)+len(e.Keywords))
		for _, arg := range e.Args {
			parts = append(parts, p.operand(arg, precNamed))
		}
		for _, kw := range e.Keywords {
			parts = append(parts, p.keyword(kw))
		}
		return p.operand(e.Func, precAtom) + "(" + strings.Join(parts, ", ") + ")", precAtom
	case *nodes.Keyword:
		return p.keyword(e), precNamed

	case *nodes.List:
		return "[" + p.exprs(e.Elts, precNamed) + "]", precAtom
	case *nodes.Tuple:
		switch len(e.Elts) {
		case 0:
			return "()", precAtom
		case 1:
			return "(" + p.operand(e.Elts[0], precNamed) + ",)", precAtom
		default:
			return "(" + p.exprs(e.Elts, precNamed) + ")", precAtom
		}
	case *nodes.Set:
		if len(e.Elts) == 0 {
			return "set()", precAtom
		}
		return "{" + p.exprs(e.Elts, precNamed) + "}", precAtom
	case *nodes.Dict:
		parts := make([]string, 0, len(e.Values))
		for i, v := range e.Values {
			var k nodes.Expr
			if i < len(e.Keys) {
				k = e.Keys[i]
			}
			if k == nil {
				parts = append(parts, "**"+p.operand(v, precBitOr))
				continue
			}
			parts = append(parts, p.operand(k, precLambda)+": "+p.operand(v, precLambda))
		}
		return "{" + strings.Join(parts, ", ") + "}", precAtom

	case *nodes.ListComp:
		return "[" + p.operand(e.Elt, precNamed) + p.generators(e.Generators) + "]", precAtom
	case *nodes.SetComp:
		return "{" + p.operand(e.Elt, precNamed) + p.generators(e.Generators) + "}", precAtom
	case *nodes.GeneratorExp:
		return "(" + p.operand(e.Elt, precNamed) + p.generators(e.Generators) + ")", precAtom
	case *nodes.DictComp:
		return "{" + p.operand(e.Key, precLambda) + ": " + p.operand(e.Value, precLambda) + p.generators(e.Generators) + "}", precAtom

	case *nodes.BinOp:
		prec, ok := binaryPrec[e.Op]
		if !ok {
			prec = precArith
		}
		left, right := prec, prec+1
		if e.Op == nodes.Pow {
			left, right = precAwait, precUnary
		}
		return p.operand(e.Left, left) + " " + e.Op.String() + " " + p.operand(e.Right, right), prec
	case *nodes.UnaryOp:
		if e.Op == nodes.Not {
			return "not " + p.operand(e.Operand, precNot), precNot
		}
		return e.Op.String() + p.operand(e.Operand, precUnary), precUnary
	case *nodes.BoolOp:
		prec := precOr
		if e.Op == nodes.And {
			prec = precAnd
		}
		parts := make([]string, 0, len(e.Values))
		for _, v := range e.Values {
			parts = append(parts, p.operand(v, prec+1))
		}
		return strings.Join(parts, " "+e.Op.String()+" "), prec
	case *nodes.Compare:
		var b strings.Builder
		b.WriteString(p.operand(e.Left, precBitOr))
		for i, op := range e.Ops {
			b.WriteString(" " + op.String() + " ")
			if i < len(e.Comparators) {
				b.WriteString(p.operand(e.Comparators[i], precBitOr))
			}
		}
		return b.String(), precCompare
	case *nodes.IfExp:
		return p.operand(e.Body, precOr) + " if " + p.operand(e.Test, precOr) + " else " + p.operand(e.OrElse, precIfExp), precIfExp
	case *nodes.Lambda:
		args := p.arguments(e.Args, false)
		if args == "" {
			return "lambda: " + p.operand(e.Body, precLambda), precLambda
		}
		return "lambda " + args + ": " + p.operand(e.Body, precLambda), precLambda
	case *nodes.NamedExpr:
		return "(" + p.operand(e.Target, precAtom) + " := " + p.operand(e.Value, precLambda) + ")", precAtom
	case *nodes.Starred:
		return "*" + p.operand(e.Value, precBitOr), precAtom
	case *nodes.Await:
		return "await " + p.operand(e.Value, precAtom), precAwait
	case *nodes.Yield:
		if e.Value == nil {
			return "yield", precLowest
		}
		return "yield " + p.exprList(e.Value), precLowest
	case *nodes.TypeParam:
		if e.Bound != nil {
			return e.Name + ": " + p.expr(e.Bound), precAtom
		}
		return e.Name, precAtom

	default:
		return "<unknown " + typeName(e) + ">", precAtom
	}
}

// subscript renders the index of a subscription, where a tuple needs no parentheses.
func (p *printer) subscript(e nodes.Expr) string {
	if t, ok := e.(*nodes.Tuple); ok && len(t.Elts) > 1 {
		return p.exprs(t.Elts, precNamed)
	}
	return p.expr(e)
}

func (p *printer) sliceBound(e nodes.Expr) string {
	if e == nil {
		return ""
	}
	return p.operand(e, precLambda)
}

func (p *printer) keyword(kw *nodes.Keyword) string {
	if kw == nil {
		return ""
	}
	if kw.Arg == "" {
		return "**" + p.operand(kw.Value, precBitOr)
	}
	return kw.Arg + "=" + p.operand(kw.Value, precLambda)
}

func (p *printer) generators(gens []*nodes.Comprehension) string {
	var b strings.Builder
	for _, g := range gens {
		if g == nil {
			continue
		}
		if g.IsAsync {
			b.WriteString(" async")
		}
		b.WriteString(" for " + p.target(g.Target) + " in " + p.operand(g.Iter, precOr))
		for _, cond := range g.Ifs {
			b.WriteString(" if " + p.operand(cond, precOr))
		}
	}
	return b.String()
}

func isDigits(text string) bool {
	return text != "" && strings.Trim(text, "0123456789") == ""
}
