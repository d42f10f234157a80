package nodes

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRepr(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "name",
			node: NewName("x"),
			want: `Name(ID="x")`,
		},
		{
			name: "empty conditional",
			node: NewIf(NewName("ok")),
			want: `If(Test=Name(ID="ok"), Body=[], OrElse=[])`,
		},
		{
			name: "none constant",
			node: NewConstant(nil),
			want: `Constant(Value=nil, Kind="")`,
		},
		{
			name: "fstring constant",
			node: NewFString("{x}"),
			want: `Constant(Value="{x}", Kind="f")`,
		},
		{
			name: "decimal constant",
			node: NewConstant(decimal.RequireFromString("1.5")),
			want: `Constant(Value=1.5, Kind="")`,
		},
		{
			name: "comparison lists operators by token",
			node: NewCompare(NewName("a"), Lt, NewConstant(1)),
			want: `Compare(Left=Name(ID="a"), Ops=[<], Comparators=[Constant(Value=1, Kind="")])`,
		},
		{
			name: "nil pointer field",
			node: &FunctionDef{Name: "f", Body: []Node{&Pass{}}},
			want: `FunctionDef(Name="f", Args=nil, Body=[Pass()], Returns=nil, Decorators=[], TypeParams=[], IsAsync=false)`,
		},
		{
			name: "string list",
			node: &Global{Names: []string{"a", "b"}},
			want: `Global(Names=["a", "b"])`,
		},
		{
			name: "typed nil node",
			node: (*Name)(nil),
			want: "nil",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.String())
		})
	}
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpNone, ""},
		{And, "and"},
		{NotIn, "not in"},
		{IsNot, "is not"},
		{FloorDiv, "//"},
		{USub, "-"},
		{Invert, "~"},
		{Op(200), "<unknown op>"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.op.String())
	}
}

func TestOpClasses(t *testing.T) {
	assert.True(t, Eq.IsComparison())
	assert.True(t, NotIn.IsComparison())
	assert.False(t, Add.IsComparison())
	assert.True(t, Or.IsBoolean())
	assert.False(t, Not.IsBoolean())
	assert.True(t, Not.IsUnary())
	assert.True(t, USub.IsUnary())
	assert.False(t, Sub.IsUnary())
}

func TestFragmentsAreNotStatements(t *testing.T) {
	fragments := []Node{&Else{}, &ExceptHandler{}, &Finally{}, &MatchCase{}}
	for _, f := range fragments {
		_, isStmt := f.(Stmt)
		assert.False(t, isStmt, "%T must not be usable as a statement", f)
		_, isBlock := f.(Block)
		assert.True(t, isBlock, "%T must own a body", f)
	}
}

func TestBlockStmtsAliasesBody(t *testing.T) {
	fn := &FunctionDef{Name: "f"}
	body := fn.Stmts()
	*body = append(*body, &Pass{})
	assert.Len(t, fn.Body, 1)
}

func TestModuleNodes(t *testing.T) {
	m := &Module{Body: []Node{&Pass{}, &Break{}}}
	assert.Equal(t, m.Body, m.Nodes())
}
