package scaffold

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pycraft/pycraft/internal/codegen"
	"github.com/pycraft/pycraft/nodes"
)

// present reports whether the key holding n appeared in the manifest.
func present(n *yaml.Node) bool {
	return n != nil && n.Kind != 0
}

// literal converts a YAML value into a constant, list or dict expression. Strings are
// always string literals.
func literal(n *yaml.Node) (nodes.Expr, error) {
	return convert(n, false)
}

// reference converts a YAML value into an expression where a plain string is a dotted
// name and a quoted string is a string literal.
func reference(n *yaml.Node) (nodes.Expr, error) {
	return convert(n, true)
}

func convert(n *yaml.Node, names bool) (nodes.Expr, error) {
	if !present(n) {
		return nil, nil
	}

	switch n.Kind {
	case yaml.AliasNode:
		return convert(n.Alias, names)
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return convert(n.Content[0], names)
	case yaml.SequenceNode:
		list := &nodes.List{}
		for _, item := range n.Content {
			e, err := convert(item, names)
			if err != nil {
				return nil, err
			}
			list.Elts = append(list.Elts, e)
		}
		return list, nil
	case yaml.MappingNode:
		dict := &nodes.Dict{}
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, err := convert(n.Content[i], false)
			if err != nil {
				return nil, err
			}
			v, err := convert(n.Content[i+1], names)
			if err != nil {
				return nil, err
			}
			dict.Keys = append(dict.Keys, k)
			dict.Values = append(dict.Values, v)
		}
		return dict, nil
	case yaml.ScalarNode:
		return scalar(n, names)
	default:
		return nil, fmt.Errorf("line %d: unsupported value", n.Line)
	}
}

func scalar(n *yaml.Node, names bool) (nodes.Expr, error) {
	switch n.ShortTag() {
	case "!!null":
		return nodes.NewConstant(nil), nil
	case "!!bool":
		var v bool
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return nodes.NewConstant(v), nil
	case "!!int":
		var v int64
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return nodes.NewConstant(v), nil
	case "!!float":
		var v float64
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return nodes.NewConstant(v), nil
	}

	quoted := n.Style&(yaml.SingleQuotedStyle|yaml.DoubleQuotedStyle) != 0
	if names && !quoted {
		return codegen.DottedName(n.Value), nil
	}
	return nodes.NewConstant(n.Value), nil
}

// annotation turns a type written in the manifest into an expression. Type expressions
// such as "dict[str, int]" are carried as text.
func annotation(typ string) nodes.Expr {
	if typ == "" {
		return nil
	}
	return codegen.DottedName(typ)
}
