package builder

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pycraft/pycraft/generator"
	"github.com/pycraft/pycraft/nodes"
)

func name(id string) *nodes.Name { return nodes.NewName(id) }

func TestFunctionScope(t *testing.T) {
	b := New()
	b.Func("greet", nodes.NewArguments(nodes.NewArg("name")), func() {
		b.Add(nodes.NewReturn(name("name")))
	})

	got := b.Nodes()
	require.Len(t, got, 1)
	def, ok := got[0].(*nodes.FunctionDef)
	require.True(t, ok, "expected a function definition, got %T", got[0])
	assert.Equal(t, "greet", def.Name)
	assert.Equal(t, []nodes.Node{nodes.NewReturn(name("name"))}, def.Body)
	assert.Equal(t, 0, b.Depth())
	assert.NoError(t, b.Err())
}

func TestEmptyCompositesGetPlaceholder(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *Builder)
	}{
		{
			name:  "function",
			build: func(b *Builder) { b.Func("f", nil, nil) },
		},
		{
			name:  "class",
			build: func(b *Builder) { b.Class("A", []nodes.Expr{name("B"), name("C")}, func() {}) },
		},
		{
			name:  "if",
			build: func(b *Builder) { b.If(name("x"), nil) },
		},
		{
			name:  "for",
			build: func(b *Builder) { b.For(name("i"), name("xs"), nil) },
		},
		{
			name:  "while",
			build: func(b *Builder) { b.While(name("x"), nil) },
		},
		{
			name:  "try",
			build: func(b *Builder) { b.Try(nil) },
		},
		{
			name:  "with",
			build: func(b *Builder) { b.With(name("lock"), nil, nil) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			tt.build(b)
			got := b.Nodes()
			require.Len(t, got, 1)
			blk, ok := got[0].(nodes.Block)
			require.True(t, ok)
			assert.Equal(t, []nodes.Node{&nodes.Pass{}}, *blk.Stmts())
		})
	}
}

func TestNodesFillsDirectlyAddedComposites(t *testing.T) {
	b := New()
	inner := &nodes.While{Test: name("y")}
	outer := &nodes.If{Test: name("x"), Body: []nodes.Node{inner}}
	b.Add(outer, &nodes.Match{Subject: name("v")})

	first := b.Nodes()
	assert.Equal(t, []nodes.Node{&nodes.Pass{}}, inner.Body)
	m := first[1].(*nodes.Match)
	require.Len(t, m.Cases, 1)
	assert.Equal(t, name("_"), m.Cases[0].Pattern)

	second := b.Nodes()
	assert.Equal(t, first, second)
	assert.Len(t, inner.Body, 1)
	assert.Len(t, m.Cases, 1)
}

func TestIfElifElse(t *testing.T) {
	b := New()
	b.If(name("a"), func() {
		b.Add(nodes.NewReturn(nodes.NewConstant(1)))
		b.Elif(name("b"), func() {
			b.Add(nodes.NewReturn(nodes.NewConstant(2)))
		})
		b.Else(func() {
			b.Add(nodes.NewReturn(nodes.NewConstant(3)))
		})
	})

	got := b.Nodes()
	require.Len(t, got, 1)
	ifStmt := got[0].(*nodes.If)
	assert.Equal(t, []nodes.Node{nodes.NewReturn(nodes.NewConstant(1))}, ifStmt.Body)
	require.Len(t, ifStmt.OrElse, 2)

	elif, ok := ifStmt.OrElse[0].(*nodes.Elif)
	require.True(t, ok, "first continuation should be the elif, got %T", ifStmt.OrElse[0])
	assert.Equal(t, name("b"), elif.Test)
	assert.Equal(t, []nodes.Node{nodes.NewReturn(nodes.NewConstant(2))}, elif.Body)
	assert.Equal(t, nodes.NewReturn(nodes.NewConstant(3)), ifStmt.OrElse[1])
	assert.NoError(t, b.Err())
}

func TestLoopElse(t *testing.T) {
	b := New()
	b.For(name("i"), name("xs"), func() {
		b.Add(&nodes.Break{})
		b.Else(func() {
			b.Add(nodes.NewRaise(name("LookupError")))
		})
	})

	loop := b.Nodes()[0].(*nodes.For)
	assert.Equal(t, []nodes.Node{&nodes.Break{}}, loop.Body)
	assert.Equal(t, []nodes.Node{nodes.NewRaise(name("LookupError"))}, loop.OrElse)
}

func TestTryHandlersAndFinally(t *testing.T) {
	b := New()
	b.Try(func() {
		b.Add(nodes.NewExprStmt(nodes.NewCall(name("work"))))
		b.Except(name("ValueError"), "e", func() {
			b.Add(nodes.NewReturn(nodes.NewConstant(nil)))
		})
		b.Except(nil, "", nil)
		b.Finally(func() {
			b.Add(nodes.NewExprStmt(nodes.NewCall(name("cleanup"))))
		})
		b.Finally(func() {
			b.Add(nodes.NewExprStmt(nodes.NewCall(name("close"))))
		})
	})

	try := b.Nodes()[0].(*nodes.Try)
	require.Len(t, try.Body, 1)
	require.Len(t, try.Handlers, 2)
	assert.Equal(t, "e", try.Handlers[0].Name)
	assert.Equal(t, name("ValueError"), try.Handlers[0].Type)
	assert.Nil(t, try.Handlers[1].Type)
	assert.Equal(t, []nodes.Node{&nodes.Pass{}}, try.Handlers[1].Body)
	assert.Equal(t, []nodes.Node{
		nodes.NewExprStmt(nodes.NewCall(name("cleanup"))),
		nodes.NewExprStmt(nodes.NewCall(name("close"))),
	}, try.FinalBody)
	assert.NoError(t, b.Err())
}

func TestMatchCases(t *testing.T) {
	b := New()
	b.Match(name("cmd"), func() {
		b.Case(nodes.NewConstant("go"), nil, func() {
			b.Add(nodes.NewReturn(nodes.NewConstant(true)))
		})
		b.Case(name("_"), name("strict"), nil)
	})

	m := b.Nodes()[0].(*nodes.Match)
	require.Len(t, m.Cases, 2)
	assert.Equal(t, nodes.NewConstant("go"), m.Cases[0].Pattern)
	assert.Equal(t, name("strict"), m.Cases[1].Guard)
	assert.Equal(t, []nodes.Node{&nodes.Pass{}}, m.Cases[1].Body)
}

func TestMismatches(t *testing.T) {
	tests := []struct {
		name     string
		build    func(b *Builder)
		wantKind string
		wantRes  Resolution
		check    func(t *testing.T, got []nodes.Node)
	}{
		{
			name: "else at top level is kept as a statement",
			build: func(b *Builder) {
				b.Else(func() { b.Add(&nodes.Pass{}) })
			},
			wantKind: "else",
			wantRes:  Appended,
			check: func(t *testing.T, got []nodes.Node) {
				require.Len(t, got, 1)
				assert.IsType(t, &nodes.Else{}, got[0])
			},
		},
		{
			name: "elif inside a function body",
			build: func(b *Builder) {
				b.Func("f", nil, func() {
					b.Elif(name("x"), nil)
				})
			},
			wantKind: "elif",
			wantRes:  Appended,
			check: func(t *testing.T, got []nodes.Node) {
				def := got[0].(*nodes.FunctionDef)
				require.Len(t, def.Body, 1)
				assert.IsType(t, &nodes.Elif{}, def.Body[0])
			},
		},
		{
			name: "elif inside a loop stays on the loop",
			build: func(b *Builder) {
				b.For(name("i"), name("xs"), func() {
					b.Add(&nodes.Break{})
					b.Elif(name("c"), func() { b.Add(&nodes.Continue{}) })
				})
			},
			wantKind: "elif",
			wantRes:  Appended,
			check: func(t *testing.T, got []nodes.Node) {
				loop := got[0].(*nodes.For)
				assert.Equal(t, []nodes.Node{&nodes.Break{}}, loop.Body)
				require.Len(t, loop.OrElse, 1)
				assert.IsType(t, &nodes.Elif{}, loop.OrElse[0])
			},
		},
		{
			name: "elif inside a try stays on the try",
			build: func(b *Builder) {
				b.Try(func() {
					b.Elif(name("c"), nil)
				})
			},
			wantKind: "elif",
			wantRes:  Appended,
			check: func(t *testing.T, got []nodes.Node) {
				try := got[0].(*nodes.Try)
				require.Len(t, try.OrElse, 1)
				assert.IsType(t, &nodes.Elif{}, try.OrElse[0])
			},
		},
		{
			name: "case outside a match is dropped",
			build: func(b *Builder) {
				b.Case(name("_"), nil, func() { b.Add(&nodes.Pass{}) })
			},
			wantKind: "case",
			wantRes:  Dropped,
			check: func(t *testing.T, got []nodes.Node) {
				assert.Empty(t, got)
			},
		},
		{
			name: "except outside a try",
			build: func(b *Builder) {
				b.While(name("x"), func() {
					b.Except(name("KeyError"), "", nil)
				})
			},
			wantKind: "except",
			wantRes:  Appended,
			check: func(t *testing.T, got []nodes.Node) {
				loop := got[0].(*nodes.While)
				require.Len(t, loop.Body, 1)
				assert.IsType(t, &nodes.ExceptHandler{}, loop.Body[0])
			},
		},
		{
			name: "finally outside a try is dropped",
			build: func(b *Builder) {
				b.Finally(func() { b.Add(&nodes.Pass{}) })
			},
			wantKind: "finally",
			wantRes:  Dropped,
			check: func(t *testing.T, got []nodes.Node) {
				assert.Empty(t, got)
			},
		},
		{
			name: "statement inside a match but outside a case",
			build: func(b *Builder) {
				b.Func("f", nil, func() {
					b.Match(name("v"), func() {
						b.Add(nodes.NewReturn(nil))
					})
				})
			},
			wantKind: "statement",
			wantRes:  Appended,
			check: func(t *testing.T, got []nodes.Node) {
				def := got[0].(*nodes.FunctionDef)
				require.Len(t, def.Body, 2)
				assert.Equal(t, nodes.NewReturn(nil), def.Body[0])
				m := def.Body[1].(*nodes.Match)
				require.Len(t, m.Cases, 1)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			tt.build(b)
			tt.check(t, b.Nodes())

			err := b.Err()
			require.Error(t, err)
			var mismatch *MismatchError
			require.True(t, errors.As(err, &mismatch))
			assert.Equal(t, tt.wantKind, mismatch.Kind)
			assert.Equal(t, tt.wantRes, mismatch.Resolution)
			assert.Equal(t, 0, b.Depth())
		})
	}
}

func TestElifChainIsNotAMismatch(t *testing.T) {
	b := New()
	b.If(name("a"), func() {
		b.Elif(name("b"), func() {
			b.Elif(name("c"), nil)
		})
	})
	b.Nodes()
	assert.NoError(t, b.Err())
}

func TestWarnComments(t *testing.T) {
	tests := []struct {
		name  string
		opts  []BuilderOption
		build func(b *Builder)
		want  string
	}{
		{
			name: "disabled by default",
			build: func(b *Builder) {
				b.Func("f", nodes.NewArguments(), func() {
					b.Elif(name("x"), nil)
				})
			},
			want: "def f():\n\telif x:\n\t\tpass",
		},
		{
			name: "elif in a function body",
			opts: []BuilderOption{WithWarnComments()},
			build: func(b *Builder) {
				b.Func("f", nodes.NewArguments(), func() {
					b.Elif(name("x"), nil)
				})
			},
			want: strings.Join([]string{
				"def f():",
				"\t# WARN: elif closed under def f, want one of if, elif, for, while, try; appended as a statement",
				"\telif x:",
				"\t\tpass",
			}, "\n"),
		},
		{
			name: "except at top level",
			opts: []BuilderOption{WithWarnComments()},
			build: func(b *Builder) {
				b.Except(name("KeyError"), "", nil)
			},
			want: strings.Join([]string{
				"# WARN: except closed under top level, want one of try; appended as a statement",
				"except KeyError:",
				"\tpass",
			}, "\n"),
		},
		{
			name: "dropped clauses leave no comment",
			opts: []BuilderOption{WithWarnComments()},
			build: func(b *Builder) {
				b.Case(name("_"), nil, nil)
				b.Add(&nodes.Pass{})
			},
			want: "pass",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.opts...)
			tt.build(b)
			assert.Equal(t, tt.want, generator.New().Render(b.Nodes()))
			assert.Error(t, b.Err())
		})
	}
}

func TestMismatchErrorMessage(t *testing.T) {
	err := &MismatchError{
		Kind:       "case",
		Parent:     "top level",
		Want:       []string{"match"},
		Resolution: Dropped,
	}
	assert.Equal(t, "case closed under top level, want one of match; dropped", err.Error())
}

func TestScopeClosesOnPanic(t *testing.T) {
	b := New()
	assert.Panics(t, func() {
		b.Func("f", nil, func() {
			b.If(name("x"), func() {
				panic("boom")
			})
		})
	})

	assert.Equal(t, 0, b.Depth())
	got := b.Nodes()
	require.Len(t, got, 1)
	def := got[0].(*nodes.FunctionDef)
	require.Len(t, def.Body, 1)
	assert.IsType(t, &nodes.If{}, def.Body[0])
}

func TestOptions(t *testing.T) {
	b := New()
	b.AsyncFunc("fetch", nodes.NewArguments(nodes.NewArg("url")), nil,
		ReturnsName("bytes"),
		Decorators(name("cached")),
		TypeParams(nodes.NewTypeParam("T")),
		Extra("docstring", "ignored"),
	)
	b.Class("Meta", nil, nil, Keywords(nodes.NewKeyword("metaclass", name("ABCMeta"))))
	b.With(name("a"), name("x"), nil, Item(name("b"), nil), Async())
	b.AsyncFor(name("row"), name("rows"), nil)
	b.Func("plain", nil, nil, ReturnsName(""), nil)

	got := b.Nodes()
	require.Len(t, got, 5)

	fetch := got[0].(*nodes.FunctionDef)
	assert.True(t, fetch.IsAsync)
	assert.Equal(t, name("bytes"), fetch.Returns)
	assert.Equal(t, []nodes.Expr{name("cached")}, fetch.Decorators)
	assert.Len(t, fetch.TypeParams, 1)

	meta := got[1].(*nodes.ClassDef)
	require.Len(t, meta.Keywords, 1)
	assert.Equal(t, "metaclass", meta.Keywords[0].Arg)

	with := got[2].(*nodes.With)
	assert.True(t, with.IsAsync)
	require.Len(t, with.Items, 2)
	assert.Equal(t, name("x"), with.Items[0].OptionalVars)

	assert.True(t, got[3].(*nodes.For).IsAsync)

	plain := got[4].(*nodes.FunctionDef)
	assert.Nil(t, plain.Returns)
	assert.NotNil(t, plain.Args)
}

func TestImportsAndComments(t *testing.T) {
	b := New()
	b.Import("os", "sys")
	b.ImportFrom("typing", []string{"Any"}, 0)
	b.Comment("generated")

	got := b.Nodes()
	require.Len(t, got, 3)
	imp := got[0].(*nodes.Import)
	assert.Len(t, imp.Names, 2)
	assert.Equal(t, "typing", got[1].(*nodes.ImportFrom).Module)
	assert.Equal(t, nodes.NewComment("generated"), got[2])
}
