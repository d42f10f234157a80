package codegen

import (
	"github.com/pycraft/pycraft/nodes"
)

// WildcardCase returns the catch-all case clause `case _: pass`.
func WildcardCase() *nodes.MatchCase {
	return &nodes.MatchCase{
		Pattern: nodes.NewName("_"),
		Body:    []nodes.Node{&nodes.Pass{}},
	}
}

// Docstring returns a bare string expression statement holding text, the form used to
// document modules, classes and functions.
func Docstring(text string) *nodes.ExprStmt {
	return nodes.NewExprStmt(nodes.NewConstant(text))
}

// MainGuard returns the entry point guard:
//
//	if __name__ == '__main__':
//		<entry>()
func MainGuard(entry string) *nodes.If {
	guard := nodes.NewIf(nodes.NewCompare(
		nodes.NewName("__name__"),
		nodes.Eq,
		nodes.NewConstant("__main__"),
	))
	guard.Body = []nodes.Node{CallName(entry)}
	return guard
}

// Field returns an annotated class-level assignment. value may be nil.
func Field(name string, annotation, value nodes.Expr) *nodes.AnnAssign {
	return nodes.NewAnnAssign(name, annotation, value)
}

// RaiseNew returns `raise <exc>(args...)`.
func RaiseNew(exc string, args ...nodes.Expr) *nodes.Raise {
	return nodes.NewRaise(CallName(exc, args...))
}
