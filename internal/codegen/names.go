package codegen

import (
	"strings"

	"github.com/pycraft/pycraft/nodes"
)

// DottedName turns a dotted reference such as "os.path.join" into a chain of attribute
// accesses rooted at a name. An empty segment is skipped.
func DottedName(path string) nodes.Expr {
	var expr nodes.Expr
	for _, part := range strings.Split(path, ".") {
		if part == "" {
			continue
		}
		if expr == nil {
			expr = nodes.NewName(part)
			continue
		}
		expr = nodes.NewAttribute(expr, part)
	}
	if expr == nil {
		return nodes.NewName(path)
	}
	return expr
}

// SelfAttribute returns the expression `self.<attr>`.
func SelfAttribute(attr string) *nodes.Attribute {
	return nodes.NewAttribute(nodes.NewName("self"), attr)
}

// SelfParam returns the receiver parameter of an instance method.
func SelfParam() *nodes.Arg {
	return nodes.NewArg("self")
}

// MethodArguments returns a parameter list that starts with self, followed by params.
func MethodArguments(params ...*nodes.Arg) *nodes.Arguments {
	return nodes.NewArguments(append([]*nodes.Arg{SelfParam()}, params...)...)
}

// CallName builds a call to the dotted callee with positional args.
func CallName(callee string, args ...nodes.Expr) *nodes.Call {
	return nodes.NewCall(DottedName(callee), args...)
}
