package codegen

import (
	"slices"
	"strings"

	"github.com/pycraft/pycraft/nodes"
)

// Import creates a single import statement for the given modules. A module written as
// "numpy as np" is imported under its alias.
func Import(modules ...string) *nodes.Import {
	imp := &nodes.Import{}
	for _, m := range modules {
		imp.Names = append(imp.Names, alias(m))
	}
	return imp
}

// ImportFrom creates a from-import statement. level is the number of leading dots of a
// relative import, 0 for an absolute import.
func ImportFrom(module string, names []string, level int) *nodes.ImportFrom {
	imp := &nodes.ImportFrom{
		Module: module,
		Level:  level,
	}
	for _, n := range names {
		imp.Names = append(imp.Names, alias(n))
	}
	return imp
}

// GroupImports collects import statements into a single group so they are rendered
// together, one per line, in the order given.
func GroupImports(imports ...nodes.Stmt) *nodes.ImportGroup {
	return &nodes.ImportGroup{Imports: slices.Clone(imports)}
}

func alias(spec string) *nodes.Alias {
	name, as, found := strings.Cut(strings.TrimSpace(spec), " as ")
	if !found {
		return nodes.NewAlias(name)
	}
	return &nodes.Alias{
		Name:   strings.TrimSpace(name),
		AsName: strings.TrimSpace(as),
	}
}
