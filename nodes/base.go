// Package nodes defines the syntax tree that the builder assembles and the generator
// renders. Every construct is one concrete struct type; the set is closed by the
// unexported marker methods on Node, Expr and Stmt.
//
// Constructing a node never fails and never validates its fields. Structural rules are
// enforced by the builder package, and rendering rules live in the generator package.
package nodes

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Node is a single syntax construct in the tree.
type Node interface {
	// String returns the diagnostic representation of the node, listing its exported
	// fields by name. It is meant for debugging and tests, not for code generation.
	String() string
	node()
}

// Expr is a node that produces a value and can be used inside another node's field.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a node that may stand on its own line inside a body.
type Stmt interface {
	Node
	stmtNode()
}

// Block is implemented by nodes that own an ordered body of child statements.
type Block interface {
	Node
	// Stmts returns a pointer to the node's body so it can be extended in place.
	Stmts() *[]Node
}

const nilRep = "nil"

// Repr builds the diagnostic representation of a node: its type name followed by
// every exported field in declaration order.
func Repr(n Node) string {
	v := reflect.ValueOf(n)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nilRep
		}
		v = v.Elem()
	}
	t := v.Type()

	fields := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fields = append(fields, f.Name+"="+reprValue(v.Field(i)))
	}
	return t.Name() + "(" + strings.Join(fields, ", ") + ")"
}

func reprValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return nilRep
		}
	}

	if v.CanInterface() {
		switch x := v.Interface().(type) {
		case Node:
			return x.String()
		case string:
			return strconv.Quote(x)
		case []byte:
			return fmt.Sprintf("%q", x)
		case fmt.Stringer:
			return x.String()
		}
	}

	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		return reprValue(v.Elem())
	case reflect.Slice, reflect.Array:
		items := make([]string, v.Len())
		for i := range items {
			items[i] = reprValue(v.Index(i))
		}
		return "[" + strings.Join(items, ", ") + "]"
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}
