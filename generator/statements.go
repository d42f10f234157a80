package generator

import (
	"reflect"
	"strings"

	"github.com/pycraft/pycraft/nodes"
)

func (p *printer) stmts(ns []nodes.Node) {
	for _, n := range ns {
		p.stmt(n)
	}
}

// block renders body one level deeper. A body that produces no lines gets a pass line
// so the result always parses.
func (p *printer) block(body []nodes.Node) {
	p.withIndent(func() {
		start := len(p.lines)
		p.stmts(body)
		if len(p.lines) == start {
			p.line("pass")
		}
	})
}

// clause renders a bare keyword header such as "else:" followed by body.
func (p *printer) clause(keyword string, body []nodes.Node) {
	p.line(keyword + ":")
	p.block(body)
}

func (p *printer) stmt(n nodes.Node) {
	if isNil(n) {
		return
	}
	switch n := n.(type) {
	case *nodes.Import:
		p.line("import " + p.aliases(n.Names))
	case *nodes.ImportFrom:
		p.line("from " + strings.Repeat(".", n.Level) + n.Module + " import " + p.aliases(n.Names))
	case *nodes.ImportGroup:
		for _, imp := range n.Imports {
			p.stmt(imp)
		}
	case *nodes.Module:
		p.stmts(n.Body)

	case *nodes.ClassDef:
		p.decorators(n.Decorators)
		header := "class " + n.Name + p.typeParams(n.TypeParams)
		if len(n.Bases) > 0 || len(n.Keywords) > 0 {
			parts := make([]string, 0, len(n.Bases)+len(n.Keywords))
			for _, base := range n.Bases {
				parts = append(parts, p.operand(base, precNamed))
			}
			for _, kw := range n.Keywords {
				parts = append(parts, p.keyword(kw))
			}
			header += "(" + strings.Join(parts, ", ") + ")"
		}
		p.line(header + ":")
		p.block(n.Body)
	case *nodes.FunctionDef:
		p.decorators(n.Decorators)
		header := "def "
		if n.IsAsync {
			header = "async def "
		}
		header += n.Name + p.typeParams(n.TypeParams) + "(" + p.arguments(n.Args, true) + ")"
		if n.Returns != nil {
			header += " -> " + p.expr(n.Returns)
		}
		p.line(header + ":")
		p.block(n.Body)

	case *nodes.If:
		p.conditional("if", n.Test, n.Body, n.OrElse)
	case *nodes.Elif:
		p.conditional("elif", n.Test, n.Body, n.OrElse)
	case *nodes.Else:
		p.clause("else", n.Body)
	case *nodes.For:
		keyword := "for "
		if n.IsAsync {
			keyword = "async for "
		}
		p.line(keyword + p.target(n.Target) + " in " + p.exprList(n.Iter) + ":")
		p.block(n.Body)
		if len(n.OrElse) > 0 {
			p.clause("else", n.OrElse)
		}
	case *nodes.While:
		p.line("while " + p.expr(n.Test) + ":")
		p.block(n.Body)
		if len(n.OrElse) > 0 {
			p.clause("else", n.OrElse)
		}
	case *nodes.With:
		keyword := "with "
		if n.IsAsync {
			keyword = "async with "
		}
		items := make([]string, 0, len(n.Items))
		for _, item := range n.Items {
			items = append(items, p.withItem(item))
		}
		p.line(keyword + strings.Join(items, ", ") + ":")
		p.block(n.Body)
	case *nodes.Try:
		p.clause("try", n.Body)
		for _, h := range n.Handlers {
			p.stmt(h)
		}
		if len(n.OrElse) > 0 {
			p.clause("else", n.OrElse)
		}
		if len(n.FinalBody) > 0 {
			p.clause("finally", n.FinalBody)
		}
	case *nodes.ExceptHandler:
		header := "except"
		if n.Type != nil {
			header += " " + p.expr(n.Type)
			if n.Name != "" {
				header += " as " + n.Name
			}
		}
		p.clause(header, n.Body)
	case *nodes.Finally:
		p.clause("finally", n.Body)
	case *nodes.Match:
		p.line("match " + p.exprList(n.Subject) + ":")
		p.withIndent(func() {
			if len(n.Cases) == 0 {
				p.clause("case _", nil)
				return
			}
			for _, c := range n.Cases {
				p.stmt(c)
			}
		})
	case *nodes.MatchCase:
		header := "case " + p.exprList(n.Pattern)
		if n.Guard != nil {
			header += " if " + p.expr(n.Guard)
		}
		p.clause(header, n.Body)

	case *nodes.Assign:
		parts := make([]string, 0, len(n.Targets)+1)
		for _, t := range n.Targets {
			parts = append(parts, p.target(t))
		}
		parts = append(parts, p.exprList(n.Value))
		p.line(strings.Join(parts, " = ") + inlineComment(n.Comment))
	case *nodes.AugAssign:
		p.line(p.target(n.Target) + " " + n.Op.String() + "= " + p.exprList(n.Value) + inlineComment(n.Comment))
	case *nodes.AnnAssign:
		text := n.Target + ": " + p.expr(n.Annotation)
		if n.Value != nil {
			text += " = " + p.exprList(n.Value)
		}
		p.line(text + inlineComment(n.Comment))

	case *nodes.Return:
		if n.Value == nil {
			p.line("return")
			return
		}
		p.line("return " + p.exprList(n.Value))
	case *nodes.Delete:
		p.line("del " + p.exprs(n.Targets, precBitOr))
	case *nodes.Global:
		p.line("global " + strings.Join(n.Names, ", "))
	case *nodes.Nonlocal:
		p.line("nonlocal " + strings.Join(n.Names, ", "))
	case *nodes.Assert:
		text := "assert " + p.expr(n.Test)
		if n.Msg != nil {
			text += ", " + p.expr(n.Msg)
		}
		p.line(text)
	case *nodes.Raise:
		if n.Exc == nil {
			p.line("raise")
			return
		}
		text := "raise " + p.expr(n.Exc)
		if n.Cause != nil {
			text += " from " + p.expr(n.Cause)
		}
		p.line(text)
	case *nodes.Pass:
		p.line("pass")
	case *nodes.Break:
		p.line("break")
	case *nodes.Continue:
		p.line("continue")
	case *nodes.Comment:
		if n.Text == "" {
			return
		}
		for _, text := range strings.Split(n.Text, "\n") {
			p.line("# " + text)
		}
	case *nodes.ExprStmt:
		p.line(p.exprList(n.Value))
	case *nodes.Call, *nodes.Await, *nodes.Yield:
		p.line(p.expr(n.(nodes.Expr)))

	default:
		p.line("# Unknown node: " + typeName(n))
	}
}

// conditional renders an if or elif header and body followed by its continuation list.
// Leading Elif entries render as elif clauses; the first other entry opens a single else
// clause holding it and every entry after it.
func (p *printer) conditional(keyword string, test nodes.Expr, body, orElse []nodes.Node) {
	p.line(keyword + " " + p.expr(test) + ":")
	p.block(body)
	for i, n := range orElse {
		if elif, ok := n.(*nodes.Elif); ok {
			p.stmt(elif)
			continue
		}
		p.clause("else", orElse[i:])
		return
	}
}

func (p *printer) decorators(decorators []nodes.Expr) {
	for _, d := range decorators {
		p.line("@" + p.expr(d))
	}
}

func (p *printer) typeParams(params []nodes.Expr) string {
	if len(params) == 0 {
		return ""
	}
	return "[" + p.exprs(params, precLowest) + "]"
}

func (p *printer) aliases(names []*nodes.Alias) string {
	parts := make([]string, 0, len(names))
	for _, a := range names {
		if a == nil {
			continue
		}
		if a.AsName != "" {
			parts = append(parts, a.Name+" as "+a.AsName)
			continue
		}
		parts = append(parts, a.Name)
	}
	return strings.Join(parts, ", ")
}

func (p *printer) withItem(item *nodes.WithItem) string {
	if item == nil {
		return ""
	}
	text := p.expr(item.ContextExpr)
	if item.OptionalVars != nil {
		text += " as " + p.expr(item.OptionalVars)
	}
	return text
}

func inlineComment(text string) string {
	if text == "" {
		return ""
	}
	return "  # " + text
}

// typeName returns the bare type name of n, without package or pointer decoration.
func typeName(n nodes.Node) string {
	t := reflect.TypeOf(n)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}

// isNil reports whether n is nil or a typed nil pointer.
func isNil(n nodes.Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
