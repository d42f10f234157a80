package builder

import (
	"github.com/pycraft/pycraft/nodes"
)

// parents accepted by else and elif continuations
var continuationParents = []string{"if", "elif", "for", "while", "try"}

// continuation returns the continuation list of parent when parent can take else and
// elif clauses.
func continuation(parent nodes.Node) *[]nodes.Node {
	switch p := parent.(type) {
	case *nodes.If:
		return &p.OrElse
	case *nodes.Elif:
		return &p.OrElse
	case *nodes.For:
		return &p.OrElse
	case *nodes.While:
		return &p.OrElse
	case *nodes.Try:
		return &p.OrElse
	default:
		return nil
	}
}

// If opens a conditional. Elif and Else clauses for it are opened inside fn.
func (b *Builder) If(test nodes.Expr, fn func(), opts ...Option) {
	b.scope(nodes.NewIf(test), fn, b.closePlain)
}

// Elif opens an else-if continuation of the enclosing if, elif, loop or try. On close
// the whole clause is appended to the parent's continuation list, so further clauses can
// nest inside it. Under a loop or try it is kept but recorded as a mismatch.
func (b *Builder) Elif(test nodes.Expr, fn func(), opts ...Option) {
	b.scope(&nodes.Elif{Test: test}, fn, b.closeElif)
}

func (b *Builder) closeElif(n nodes.Node) {
	fill(n)
	if orElse := continuation(b.top()); orElse != nil {
		switch b.top().(type) {
		case *nodes.If, *nodes.Elif:
		default:
			// kept on the loop or try, where it renders inside the else clause
			b.mismatch("elif", []string{"if", "elif"}, Appended)
		}
		*orElse = append(*orElse, n)
		return
	}
	b.fallback("elif", continuationParents)
	b.appendCurrent("elif", n)
}

// Else opens the else clause of the enclosing if, elif, loop or try. On close its
// statements, not the clause itself, are spliced into the parent's continuation list.
func (b *Builder) Else(fn func(), opts ...Option) {
	b.scope(&nodes.Else{}, fn, b.closeElse)
}

func (b *Builder) closeElse(n nodes.Node) {
	els := n.(*nodes.Else)
	fill(els)
	if orElse := continuation(b.top()); orElse != nil {
		*orElse = append(*orElse, els.Body...)
		return
	}
	b.fallback("else", continuationParents)
	b.appendCurrent("else", els)
}

// Match opens a structural match on subject. Case clauses are opened inside fn.
func (b *Builder) Match(subject nodes.Expr, fn func(), opts ...Option) {
	b.scope(&nodes.Match{Subject: subject}, fn, b.closePlain)
}

// Case opens a case clause of the enclosing match. guard may be nil. A case that does
// not close directly inside a match is dropped.
func (b *Builder) Case(pattern, guard nodes.Expr, fn func(), opts ...Option) {
	b.scope(&nodes.MatchCase{Pattern: pattern, Guard: guard}, fn, b.closeCase)
}

func (b *Builder) closeCase(n nodes.Node) {
	c := n.(*nodes.MatchCase)
	fill(c)
	if m, ok := b.top().(*nodes.Match); ok {
		m.Cases = append(m.Cases, c)
		return
	}
	b.mismatch("case", []string{"match"}, Dropped)
}

// For opens a for loop. Pass Async to open an async for loop.
func (b *Builder) For(target, iter nodes.Expr, fn func(), opts ...Option) {
	cfg := newConfig(opts)
	loop := nodes.NewFor(target, iter)
	loop.IsAsync = cfg.async
	b.scope(loop, fn, b.closePlain)
}

// AsyncFor opens an async for loop.
func (b *Builder) AsyncFor(target, iter nodes.Expr, fn func(), opts ...Option) {
	b.For(target, iter, fn, append(opts, Async())...)
}

// While opens a while loop.
func (b *Builder) While(test nodes.Expr, fn func(), opts ...Option) {
	b.scope(nodes.NewWhile(test), fn, b.closePlain)
}

// Try opens a protected block. Except, Else and Finally clauses are opened inside fn.
func (b *Builder) Try(fn func(), opts ...Option) {
	b.scope(&nodes.Try{}, fn, b.closePlain)
}

// Except opens a handler clause of the enclosing try. excType may be nil for a bare
// handler; name may be empty.
func (b *Builder) Except(excType nodes.Expr, name string, fn func(), opts ...Option) {
	b.scope(&nodes.ExceptHandler{Type: excType, Name: name}, fn, b.closeExcept)
}

func (b *Builder) closeExcept(n nodes.Node) {
	h := n.(*nodes.ExceptHandler)
	fill(h)
	if t, ok := b.top().(*nodes.Try); ok {
		t.Handlers = append(t.Handlers, h)
		return
	}
	b.fallback("except", []string{"try"})
	b.appendCurrent("except", h)
}

// Finally opens the cleanup clause of the enclosing try. Statements added inside fn are
// accumulated and, on close, extend the try's cleanup list. A cleanup clause that does
// not close directly inside a try is dropped.
func (b *Builder) Finally(fn func(), opts ...Option) {
	acc := &nodes.Finally{}
	b.stack = append(b.stack, acc)
	defer func() {
		b.stack = b.stack[:len(b.stack)-1]
		fill(acc)
		if t, ok := b.top().(*nodes.Try); ok {
			t.FinalBody = append(t.FinalBody, acc.Body...)
			return
		}
		b.mismatch("finally", []string{"try"}, Dropped)
	}()
	if fn != nil {
		fn()
	}
}

// With opens a resource-acquisition block. optionalVars may be nil. Item adds further
// context managers and Async turns it into async with.
func (b *Builder) With(contextExpr, optionalVars nodes.Expr, fn func(), opts ...Option) {
	cfg := newConfig(opts)
	with := &nodes.With{
		Items:   append([]*nodes.WithItem{nodes.NewWithItem(contextExpr, optionalVars)}, cfg.items...),
		IsAsync: cfg.async,
	}
	b.scope(with, fn, b.closePlain)
}
