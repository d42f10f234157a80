package scaffold

import (
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/pycraft/pycraft/builder"
	"github.com/pycraft/pycraft/internal/codegen"
	"github.com/pycraft/pycraft/internal/comment"
	"github.com/pycraft/pycraft/nodes"
)

// Build drives a builder through the manifest, in this order: docstring, imports,
// constants, classes, functions, entry point guard. The builder is returned even when
// an error occurs so that partial output can be inspected.
func (m *Manifest) Build() (*builder.Builder, error) {
	b := builder.New(builder.WithWarnComments())
	s := &session{b: b}

	if m.Doc != "" {
		b.Add(codegen.Docstring(m.Doc))
	}

	var imports []nodes.Stmt
	for _, name := range m.Imports {
		imports = append(imports, codegen.Import(name))
	}
	for _, imp := range m.FromImports {
		imports = append(imports, codegen.ImportFrom(imp.Module, imp.Names, imp.Level))
	}
	if len(imports) > 0 {
		b.Add(codegen.GroupImports(imports...))
	}

	for _, c := range m.Constants {
		s.constant(c)
	}
	for _, c := range m.Classes {
		s.class(c)
	}
	for _, f := range m.Functions {
		s.function(f, false)
	}

	if m.Main != "" {
		guard := codegen.MainGuard(m.Main)
		if !m.defines(m.Main) {
			b.Add(comment.Info(guard, fmt.Sprintf("entry point %q is not defined in this module", m.Main))...)
		}
		b.Add(guard)
	}

	return b, errors.Join(append(s.errs, b.Err())...)
}

// defines reports whether name is a top-level function, or a class, of the manifest.
func (m *Manifest) defines(name string) bool {
	for _, f := range m.Functions {
		if f.Name == name {
			return true
		}
	}
	for _, c := range m.Classes {
		if c.Name == name {
			return true
		}
	}
	return false
}

// session carries the builder and the conversion errors collected along the way.
type session struct {
	b    *builder.Builder
	errs []error
}

func (s *session) fail(where string, err error) {
	s.errs = append(s.errs, fmt.Errorf("%s: %w", where, err))
}

func (s *session) constant(c Constant) {
	value, err := literal(&c.Value)
	if err != nil {
		s.fail(fmt.Sprintf("constant %q", c.Name), err)
		return
	}

	if c.Type != "" {
		stmt := codegen.Field(c.Name, annotation(c.Type), value)
		stmt.Comment = c.Comment
		s.b.Add(stmt)
		return
	}
	if value == nil {
		value = nodes.NewConstant(nil)
	}
	stmt := nodes.NewAssign(nodes.NewName(c.Name), value)
	stmt.Comment = c.Comment
	s.b.Add(stmt)
}

func (s *session) class(c Class) {
	bases := make([]nodes.Expr, 0, len(c.Bases))
	for _, base := range c.Bases {
		bases = append(bases, codegen.DottedName(base))
	}

	s.b.Class(c.Name, bases, func() {
		if c.Doc != "" {
			s.b.Add(codegen.Docstring(c.Doc))
		}
		if c.Init {
			s.constructor(c)
		} else {
			s.fields(c)
		}
		for _, method := range c.Methods {
			s.function(method, true)
		}
	}, builder.Decorators(decorators(c.Decorators)...))
}

// fields declares each field at class level.
func (s *session) fields(c Class) {
	for _, f := range c.Fields {
		def, err := literal(&f.Default)
		if err != nil {
			s.fail(fmt.Sprintf("class %q field %q", c.Name, f.Name), err)
			continue
		}
		if f.Type == "" {
			if def == nil {
				def = nodes.NewConstant(nil)
			}
			s.b.Add(nodes.NewAssign(nodes.NewName(f.Name), def))
			continue
		}
		s.b.Add(codegen.Field(f.Name, annotation(f.Type), def))
	}
}

// constructor generates an __init__ taking the fields, in order, and assigning each to
// self.
func (s *session) constructor(c Class) {
	assigns := make([]nodes.Stmt, 0, len(c.Fields))
	for _, f := range c.Fields {
		assigns = append(assigns, nodes.NewAssign(codegen.SelfAttribute(f.Name), nodes.NewName(f.Name)))
	}
	s.function(Function{Name: "__init__", Params: c.Fields}, true, assigns...)
}

// function opens a function scope. Methods get self, or cls for class methods,
// prepended to their parameters; static methods get neither. prelude is added ahead of
// the manifest body.
func (s *session) function(f Function, method bool, prelude ...nodes.Stmt) {
	where := fmt.Sprintf("function %q", f.Name)

	params := make([]*nodes.Arg, 0, len(f.Params))
	for _, p := range f.Params {
		arg := nodes.NewTypedArg(p.Name, annotation(p.Type))
		def, err := literal(&p.Default)
		if err != nil {
			s.fail(where+" param "+p.Name, err)
		}
		arg.Default = def
		params = append(params, arg)
	}

	var args *nodes.Arguments
	switch {
	case !method || slices.Contains(f.Decorators, "staticmethod"):
		args = nodes.NewArguments(params...)
	case slices.Contains(f.Decorators, "classmethod"):
		args = nodes.NewArguments(append([]*nodes.Arg{nodes.NewArg("cls")}, params...)...)
	default:
		args = codegen.MethodArguments(params...)
	}

	body := func() {
		if f.Doc != "" {
			s.b.Add(codegen.Docstring(f.Doc))
		}
		s.b.Add(prelude...)
		for i, stmt := range f.Body {
			if err := s.statement(stmt); err != nil {
				s.fail(fmt.Sprintf("%s body[%d]", where, i), err)
			}
		}
	}

	opts := []builder.Option{
		builder.Returns(annotation(f.Returns)),
		builder.Decorators(decorators(f.Decorators)...),
	}
	if f.Async {
		s.b.AsyncFunc(f.Name, args, body, opts...)
		return
	}
	s.b.Func(f.Name, args, body, opts...)
}

func (s *session) statement(stmt Statement) error {
	switch {
	case present(&stmt.Return):
		value, err := reference(&stmt.Return)
		if err != nil {
			return err
		}
		if c, ok := value.(*nodes.Constant); ok && c.Value == nil {
			value = nil
		}
		s.b.Add(nodes.NewReturn(value))
	case stmt.Raise != "":
		args, err := references(stmt.Args)
		if err != nil {
			return err
		}
		if len(args) == 0 {
			s.b.Add(nodes.NewRaise(codegen.DottedName(stmt.Raise)))
			return nil
		}
		s.b.Add(codegen.RaiseNew(stmt.Raise, args...))
	case stmt.Call != "":
		args, err := references(stmt.Args)
		if err != nil {
			return err
		}
		s.b.Add(codegen.CallName(stmt.Call, args...))
	case stmt.Assign != "":
		value, err := reference(&stmt.Value)
		if err != nil {
			return err
		}
		if value == nil {
			value = nodes.NewConstant(nil)
		}
		s.b.Add(nodes.NewAssign(codegen.DottedName(stmt.Assign), value))
	case stmt.Comment != "":
		s.b.Comment(stmt.Comment)
	case stmt.Pass:
		s.b.Add(&nodes.Pass{})
	default:
		return ErrBadStatement
	}
	return nil
}

func references(values []yaml.Node) ([]nodes.Expr, error) {
	out := make([]nodes.Expr, 0, len(values))
	for i := range values {
		e, err := reference(&values[i])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func decorators(names []string) []nodes.Expr {
	out := make([]nodes.Expr, 0, len(names))
	for _, name := range names {
		out = append(out, codegen.DottedName(name))
	}
	return out
}
