// Package builder assembles syntax trees through scoped construction operations.
//
// Each composite construct is opened by a method that takes a callback. The node is
// pushed before the callback runs and closed by a deferred call, so the scope closes on
// every exit path. Statements added while a scope is open go into that scope's body:
//
//	b := builder.New()
//	b.Func("greet", nodes.NewArguments(nodes.NewArg("name")), func() {
//		b.Add(nodes.NewReturn(nodes.NewName("name")))
//	})
//
// Continuation clauses (elif, else, except, finally, case) are opened inside the scope
// of the construct they extend and are reattached to it when they close. A clause that
// closes without a compatible parent is never an error at the call site: it falls back
// to an ordinary statement, or is dropped, and the mismatch is recorded for Err.
package builder

import (
	"errors"

	"github.com/pycraft/pycraft/internal/codegen"
	"github.com/pycraft/pycraft/internal/comment"
	"github.com/pycraft/pycraft/nodes"
)

// Builder tracks the stack of open nodes and the top-level sequence they are closed into.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	root         []nodes.Node
	stack        []nodes.Node
	mismatches   []error
	warnComments bool
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithWarnComments makes every clause that falls back to an ordinary statement carry
// "# WARN:" comment lines ahead of it in the generated code.
func WithWarnComments() BuilderOption {
	return func(b *Builder) {
		b.warnComments = true
	}
}

func New(opts ...BuilderOption) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Nodes returns the ordered top-level sequence. Any composite reachable from it whose
// body is still empty, for example one added directly with Add, gets a Pass placeholder
// first.
func (b *Builder) Nodes() []nodes.Node {
	for _, n := range b.root {
		fillTree(n)
	}
	return b.root
}

// Err returns every structural mismatch recorded so far, joined, or nil. Each wrapped
// error is a *MismatchError.
func (b *Builder) Err() error {
	return errors.Join(b.mismatches...)
}

// Depth returns the number of currently open scopes.
func (b *Builder) Depth() int {
	return len(b.stack)
}

// Add appends statements to the current insertion target, in order.
func (b *Builder) Add(stmts ...nodes.Stmt) {
	for _, s := range stmts {
		b.appendCurrent("statement", s)
	}
}

// Import adds an import statement for each module, in one line.
func (b *Builder) Import(modules ...string) {
	b.Add(codegen.Import(modules...))
}

// ImportFrom adds a from-import statement.
func (b *Builder) ImportFrom(module string, names []string, level int) {
	b.Add(codegen.ImportFrom(module, names, level))
}

// Comment adds a line comment.
func (b *Builder) Comment(text string) {
	b.Add(nodes.NewComment(text))
}

func (b *Builder) push(n nodes.Node) {
	b.stack = append(b.stack, n)
}

func (b *Builder) pop() nodes.Node {
	n := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return n
}

// top returns the innermost open node, or nil at the top level.
func (b *Builder) top() nodes.Node {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

// scope pushes n, runs fn, and always pops n and hands it to closer, even if fn panics.
func (b *Builder) scope(n nodes.Node, fn func(), closer func(nodes.Node)) {
	b.push(n)
	defer func() {
		closer(b.pop())
	}()
	if fn != nil {
		fn()
	}
}

// closePlain is the close step shared by every ordinary composite.
func (b *Builder) closePlain(n nodes.Node) {
	fill(n)
	b.appendCurrent(comment.Describe(n), n)
}

// appendCurrent appends n to the body of the innermost open node. When that node has no
// body of its own (a match outside any case), n goes to the nearest enclosing body, or
// the top level, and the mismatch is recorded.
func (b *Builder) appendCurrent(kind string, n nodes.Node) {
	body, nested := b.target()
	if nested {
		b.fallback(kind, []string{"a body"})
	}
	*body = append(*body, n)
}

// target returns the body statements are appended to. nested reports whether that body
// belongs to an enclosing node rather than the innermost open one.
func (b *Builder) target() (body *[]nodes.Node, nested bool) {
	for i := len(b.stack) - 1; i >= 0; i-- {
		if blk, ok := b.stack[i].(nodes.Block); ok {
			return blk.Stmts(), i != len(b.stack)-1
		}
	}
	return &b.root, len(b.stack) != 0
}

func (b *Builder) record(kind string, want []string, res Resolution) *MismatchError {
	err := &MismatchError{
		Kind:       kind,
		Parent:     comment.Describe(b.top()),
		Want:       want,
		Resolution: res,
	}
	b.mismatches = append(b.mismatches, err)
	return err
}

// mismatch records a clause that was dropped or attached somewhere it does not belong.
func (b *Builder) mismatch(kind string, want []string, res Resolution) {
	err := b.record(kind, want, res)
	comment.Report(comment.WarnHeader, comment.Position(b.stack...), err.Error())
}

// fallback records a node about to be appended as an ordinary statement at the current
// target. With warn comments enabled the warning is also written into that target.
func (b *Builder) fallback(kind string, want []string) {
	err := b.record(kind, want, Appended)
	if !b.warnComments {
		comment.Report(comment.WarnHeader, comment.Position(b.stack...), err.Error())
		return
	}
	body, _ := b.target()
	for _, stmt := range comment.Warn(b.top(), err.Error()) {
		*body = append(*body, stmt)
	}
}

// fill inserts the no-op placeholder into an empty body.
func fill(n nodes.Node) {
	if m, ok := n.(*nodes.Match); ok {
		if len(m.Cases) == 0 {
			m.Cases = append(m.Cases, codegen.WildcardCase())
		}
		return
	}
	blk, ok := n.(nodes.Block)
	if !ok {
		return
	}
	body := blk.Stmts()
	if len(*body) == 0 {
		*body = append(*body, &nodes.Pass{})
	}
}

// fillTree applies fill to n and every composite nested inside it.
func fillTree(n nodes.Node) {
	fill(n)
	if blk, ok := n.(nodes.Block); ok {
		for _, child := range *blk.Stmts() {
			fillTree(child)
		}
	}

	switch n := n.(type) {
	case *nodes.If:
		fillAll(n.OrElse)
	case *nodes.Elif:
		fillAll(n.OrElse)
	case *nodes.For:
		fillAll(n.OrElse)
	case *nodes.While:
		fillAll(n.OrElse)
	case *nodes.Try:
		for _, h := range n.Handlers {
			fillTree(h)
		}
		fillAll(n.OrElse)
		fillAll(n.FinalBody)
	case *nodes.Match:
		for _, c := range n.Cases {
			fillTree(c)
		}
	case *nodes.ImportGroup:
		for _, s := range n.Imports {
			fillTree(s)
		}
	}
}

func fillAll(list []nodes.Node) {
	for _, n := range list {
		fillTree(n)
	}
}
