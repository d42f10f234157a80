package generator

import (
	"strings"

	"github.com/pycraft/pycraft/nodes"
)

// arguments renders a parameter list without the surrounding parentheses. Lambda
// parameters cannot carry annotations, so annotate is false for them.
func (p *printer) arguments(a *nodes.Arguments, annotate bool) string {
	if a == nil {
		return ""
	}

	positional := make([]*nodes.Arg, 0, len(a.PosOnlyArgs)+len(a.Args))
	positional = append(positional, a.PosOnlyArgs...)
	positional = append(positional, a.Args...)

	var parts []string
	// defaults line up with the last positional parameters
	offset := len(positional) - len(a.Defaults)
	for i, arg := range positional {
		var def nodes.Expr
		if j := i - offset; j >= 0 && j < len(a.Defaults) {
			def = a.Defaults[j]
		}
		parts = append(parts, p.param(arg, def, annotate))
		if len(a.PosOnlyArgs) > 0 && i == len(a.PosOnlyArgs)-1 {
			parts = append(parts, "/")
		}
	}

	switch {
	case a.VarArg != nil:
		parts = append(parts, "*"+p.param(a.VarArg, nil, annotate))
	case len(a.KwOnlyArgs) > 0:
		parts = append(parts, "*")
	}

	for i, arg := range a.KwOnlyArgs {
		var def nodes.Expr
		if i < len(a.KwDefaults) {
			def = a.KwDefaults[i]
		}
		parts = append(parts, p.param(arg, def, annotate))
	}

	if a.KwArg != nil {
		parts = append(parts, "**"+p.param(a.KwArg, nil, annotate))
	}
	return strings.Join(parts, ", ")
}

// param renders a single parameter. The parameter's own Default wins over def.
func (p *printer) param(arg *nodes.Arg, def nodes.Expr, annotate bool) string {
	if arg == nil {
		return ""
	}
	if arg.Default != nil {
		def = arg.Default
	}

	text := arg.Name
	annotated := annotate && arg.Annotation != nil
	if annotated {
		text += ": " + p.expr(arg.Annotation)
	}
	switch {
	case def == nil:
		return text
	case annotated:
		return text + " = " + p.operand(def, precLambda)
	default:
		return text + "=" + p.operand(def, precLambda)
	}
}
