package builder

import (
	"github.com/pycraft/pycraft/nodes"
)

// Func opens a function definition. A nil args is an empty parameter list. Returns,
// ReturnsName, Decorators and TypeParams configure the header.
func (b *Builder) Func(name string, args *nodes.Arguments, fn func(), opts ...Option) {
	b.function(name, args, false, fn, opts)
}

// AsyncFunc opens a coroutine definition. It accepts the same options as Func.
func (b *Builder) AsyncFunc(name string, args *nodes.Arguments, fn func(), opts ...Option) {
	b.function(name, args, true, fn, opts)
}

func (b *Builder) function(name string, args *nodes.Arguments, async bool, fn func(), opts []Option) {
	cfg := newConfig(opts)
	if args == nil {
		args = &nodes.Arguments{}
	}
	def := &nodes.FunctionDef{
		Name:       name,
		Args:       args,
		Returns:    cfg.returns,
		Decorators: cfg.decorators,
		TypeParams: cfg.typeParams,
		IsAsync:    async,
	}
	b.scope(def, fn, b.closePlain)
}

// Class opens a class definition with the given base classes. Decorators, Keywords and
// TypeParams configure the header.
func (b *Builder) Class(name string, bases []nodes.Expr, fn func(), opts ...Option) {
	cfg := newConfig(opts)
	def := &nodes.ClassDef{
		Name:       name,
		Bases:      bases,
		Keywords:   cfg.keywords,
		Decorators: cfg.decorators,
		TypeParams: cfg.typeParams,
	}
	b.scope(def, fn, b.closePlain)
}
