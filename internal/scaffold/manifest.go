// Package scaffold turns a YAML manifest describing a Python module into builder calls.
package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pycraft/pycraft/internal/codegen"
	"github.com/pycraft/pycraft/internal/util"
	"github.com/pycraft/pycraft/nodes"
)

var (
	ErrEmptyManifest = errors.New("manifest is empty")
	ErrNoName        = errors.New("a name is required")
	ErrDuplicateName = errors.New("name is declared more than once")
	ErrDuplicateBase = errors.New("base class is listed more than once")
	ErrBadStatement  = errors.New("a body statement must set exactly one action")
)

// Manifest describes one generated module.
type Manifest struct {
	// File is the default output file name.
	File        string       `yaml:"file"`
	Doc         string       `yaml:"doc"`
	Imports     []string     `yaml:"imports"`
	FromImports []FromImport `yaml:"from_imports"`
	Constants   []Constant   `yaml:"constants"`
	Classes     []Class      `yaml:"classes"`
	Functions   []Function   `yaml:"functions"`
	// Main names a function called from an entry point guard at the end of the module.
	Main string `yaml:"main"`
}

type FromImport struct {
	Module string   `yaml:"module"`
	Names  []string `yaml:"names"`
	Level  int      `yaml:"level"`
}

// Constant is a module-level assignment. Type, when set, becomes an annotation.
type Constant struct {
	Name    string    `yaml:"name"`
	Type    string    `yaml:"type"`
	Value   yaml.Node `yaml:"value"`
	Comment string    `yaml:"comment"`
}

type Class struct {
	Name       string     `yaml:"name"`
	Bases      []string   `yaml:"bases"`
	Decorators []string   `yaml:"decorators"`
	Doc        string     `yaml:"doc"`
	Fields     []Param    `yaml:"fields"`
	// Init generates an __init__ that takes every field as a parameter and assigns it
	// to self, in place of the class-level field declarations.
	Init       bool       `yaml:"init"`
	Methods    []Function `yaml:"methods"`
}

// Param is a function parameter or a class field. Default is a literal.
type Param struct {
	Name    string    `yaml:"name"`
	Type    string    `yaml:"type"`
	Default yaml.Node `yaml:"default"`
}

type Function struct {
	Name       string      `yaml:"name"`
	Params     []Param     `yaml:"params"`
	Returns    string      `yaml:"returns"`
	Async      bool        `yaml:"async"`
	Decorators []string    `yaml:"decorators"`
	Doc        string      `yaml:"doc"`
	Body       []Statement `yaml:"body"`
}

// Statement is one body entry. Exactly one of Return, Raise, Call, Assign, Comment or
// Pass is set. Args belong to Call or Raise and Value to Assign.
type Statement struct {
	Return  yaml.Node   `yaml:"return"`
	Raise   string      `yaml:"raise"`
	Call    string      `yaml:"call"`
	Args    []yaml.Node `yaml:"args"`
	Assign  string      `yaml:"assign"`
	Value   yaml.Node   `yaml:"value"`
	Comment string      `yaml:"comment"`
	Pass    bool        `yaml:"pass"`
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a manifest. Unknown keys are rejected.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	m := &Manifest{}
	if err := dec.Decode(m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyManifest
		}
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the manifest for mistakes that would produce invalid source.
func (m *Manifest) Validate() error {
	var errs []error

	names := map[string]bool{}
	declare := func(kind, name string) {
		if name == "" {
			errs = append(errs, fmt.Errorf("%s: %w", kind, ErrNoName))
			return
		}
		if names[name] {
			errs = append(errs, fmt.Errorf("%s %q: %w", kind, name, ErrDuplicateName))
		}
		names[name] = true
	}

	for _, imp := range m.FromImports {
		if imp.Module == "" && imp.Level == 0 {
			errs = append(errs, fmt.Errorf("from import: %w", ErrNoName))
		}
	}
	for _, c := range m.Constants {
		declare("constant", c.Name)
	}
	for _, c := range m.Classes {
		declare("class", c.Name)
		errs = append(errs, c.validate()...)
	}
	for _, f := range m.Functions {
		declare("function", f.Name)
		errs = append(errs, f.validate(fmt.Sprintf("function %q", f.Name))...)
	}

	return errors.Join(errs...)
}

func (c Class) validate() []error {
	var errs []error
	where := fmt.Sprintf("class %q", c.Name)

	var seen []nodes.Expr
	for _, b := range c.Bases {
		base := codegen.DottedName(b)
		for _, prev := range seen {
			if util.ExprEqual(prev, base) {
				errs = append(errs, fmt.Errorf("%s base %q: %w", where, b, ErrDuplicateBase))
				break
			}
		}
		seen = append(seen, base)
	}

	errs = append(errs, validateParams(where+" field", c.Fields)...)

	methods := map[string]bool{"__init__": c.Init}
	for _, f := range c.Methods {
		if f.Name != "" && methods[f.Name] {
			errs = append(errs, fmt.Errorf("%s method %q: %w", where, f.Name, ErrDuplicateName))
		}
		methods[f.Name] = true
		errs = append(errs, f.validate(fmt.Sprintf("%s method %q", where, f.Name))...)
	}
	return errs
}

func (f Function) validate(where string) []error {
	var errs []error
	if f.Name == "" {
		errs = append(errs, fmt.Errorf("%s: %w", where, ErrNoName))
	}
	errs = append(errs, validateParams(where+" param", f.Params)...)
	for i, s := range f.Body {
		if s.actions() != 1 {
			errs = append(errs, fmt.Errorf("%s body[%d]: %w", where, i, ErrBadStatement))
		}
	}
	return errs
}

func validateParams(where string, params []Param) []error {
	var errs []error
	seen := map[string]bool{}
	for _, p := range params {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s: %w", where, ErrNoName))
			continue
		}
		if seen[p.Name] {
			errs = append(errs, fmt.Errorf("%s %q: %w", where, p.Name, ErrDuplicateName))
		}
		seen[p.Name] = true
	}
	return errs
}

// actions counts how many of the mutually exclusive actions are set.
func (s Statement) actions() int {
	n := 0
	for _, set := range []bool{
		present(&s.Return),
		s.Raise != "",
		s.Call != "",
		s.Assign != "",
		s.Comment != "",
		s.Pass,
	} {
		if set {
			n++
		}
	}
	return n
}
