package builder

import "github.com/pycraft/pycraft/nodes"

// config collects the optional fields of a scoped operation. Each operation reads only
// the fields that apply to the construct it opens.
type config struct {
	returns    nodes.Expr
	decorators []nodes.Expr
	typeParams []nodes.Expr
	keywords   []*nodes.Keyword
	items      []*nodes.WithItem
	async      bool
	extra      map[string]any
}

// Option configures a scoped operation.
type Option func(*config)

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// Returns sets the return annotation of a function.
func Returns(annotation nodes.Expr) Option {
	return func(c *config) {
		c.returns = annotation
	}
}

// ReturnsName sets the return annotation of a function to a plain name. An empty name
// leaves the function unannotated.
func ReturnsName(name string) Option {
	return func(c *config) {
		if name == "" {
			c.returns = nil
			return
		}
		c.returns = nodes.NewName(name)
	}
}

// Decorators appends decorator expressions to a function or class, in order.
func Decorators(decorators ...nodes.Expr) Option {
	return func(c *config) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// TypeParams appends generic type parameters to a function or class.
func TypeParams(params ...nodes.Expr) Option {
	return func(c *config) {
		c.typeParams = append(c.typeParams, params...)
	}
}

// Keywords appends class keyword arguments such as metaclass.
func Keywords(keywords ...*nodes.Keyword) Option {
	return func(c *config) {
		c.keywords = append(c.keywords, keywords...)
	}
}

// Item adds another context manager to a With block.
func Item(contextExpr, optionalVars nodes.Expr) Option {
	return func(c *config) {
		c.items = append(c.items, nodes.NewWithItem(contextExpr, optionalVars))
	}
}

// Async turns a For or With into its asynchronous form.
func Async() Option {
	return func(c *config) {
		c.async = true
	}
}

// Extra records configuration that no operation currently understands. It is accepted
// by every operation and ignored.
func Extra(key string, value any) Option {
	return func(c *config) {
		if c.extra == nil {
			c.extra = map[string]any{}
		}
		c.extra[key] = value
	}
}
