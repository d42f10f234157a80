package util

import (
	"reflect"

	"github.com/pycraft/pycraft/nodes"
)

// ExprEqual reports whether two expressions are structurally identical. Constants are
// equal when their kinds match and their values are deeply equal. Expression kinds
// without a comparison rule are never equal.
func ExprEqual(a nodes.Expr, b nodes.Expr) bool {
	return compareExpr(a, b)
}

func compareExpr(a nodes.Expr, b nodes.Expr) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	switch a := a.(type) {
	case *nodes.Name:
		b := b.(*nodes.Name)
		return a.ID == b.ID
	case *nodes.Constant:
		b := b.(*nodes.Constant)
		return a.Kind == b.Kind && reflect.DeepEqual(a.Value, b.Value)
	case *nodes.Attribute:
		b := b.(*nodes.Attribute)
		return a.Attr == b.Attr && compareExpr(a.Value, b.Value)
	case *nodes.Subscript:
		b := b.(*nodes.Subscript)
		return compareExpr(a.Value, b.Value) && compareExpr(a.Slice, b.Slice)
	case *nodes.Slice:
		b := b.(*nodes.Slice)
		return compareExpr(a.Lower, b.Lower) && compareExpr(a.Upper, b.Upper) && compareExpr(a.Step, b.Step)
	case *nodes.Call:
		b := b.(*nodes.Call)
		if !compareExpr(a.Func, b.Func) || !compareExprs(a.Args, b.Args) {
			return false
		}
		if len(a.Keywords) != len(b.Keywords) {
			return false
		}
		for i := range a.Keywords {
			if !compareExpr(a.Keywords[i], b.Keywords[i]) {
				return false
			}
		}
		return true
	case *nodes.Keyword:
		b := b.(*nodes.Keyword)
		return a.Arg == b.Arg && compareExpr(a.Value, b.Value)
	case *nodes.BinOp:
		b := b.(*nodes.BinOp)
		return a.Op == b.Op && compareExpr(a.Left, b.Left) && compareExpr(a.Right, b.Right)
	case *nodes.UnaryOp:
		b := b.(*nodes.UnaryOp)
		return a.Op == b.Op && compareExpr(a.Operand, b.Operand)
	case *nodes.BoolOp:
		b := b.(*nodes.BoolOp)
		return a.Op == b.Op && compareExprs(a.Values, b.Values)
	case *nodes.Compare:
		b := b.(*nodes.Compare)
		return compareExpr(a.Left, b.Left) && reflect.DeepEqual(a.Ops, b.Ops) && compareExprs(a.Comparators, b.Comparators)
	case *nodes.Starred:
		b := b.(*nodes.Starred)
		return compareExpr(a.Value, b.Value)
	case *nodes.Tuple:
		b := b.(*nodes.Tuple)
		return compareExprs(a.Elts, b.Elts)
	case *nodes.List:
		b := b.(*nodes.List)
		return compareExprs(a.Elts, b.Elts)
	case *nodes.TypeParam:
		b := b.(*nodes.TypeParam)
		return a.Name == b.Name && compareExpr(a.Bound, b.Bound)
	default:
		return false
	}
}

func compareExprs(a, b []nodes.Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !compareExpr(a[i], b[i]) {
			return false
		}
	}
	return true
}
