package comment

import (
	"fmt"
	"strings"

	"github.com/pycraft/pycraft/nodes"
)

const topLevel = "top level"

// Position creates a human readable string describing where a node sits in the tree,
// given the chain of open nodes from the outermost to the innermost. The format is as
// follows:
//
// Path 						|		Formatting
// ------------------------------------------------------------------
// no nodes						|	top level
// class, function				|	class Name > def name
// function, conditional		|	def name > if
func Position(path ...nodes.Node) string {
	if len(path) == 0 {
		return topLevel
	}

	b := strings.Builder{}
	for _, n := range path {
		if b.Len() != 0 {
			b.WriteString(" > ")
		}
		b.WriteString(Describe(n))
	}
	return b.String()
}

// Describe names a node by the keyword that introduces it, followed by its declared
// name when it has one.
func Describe(n nodes.Node) string {
	switch n := n.(type) {
	case nil:
		return topLevel
	case *nodes.ClassDef:
		return "class " + n.Name
	case *nodes.FunctionDef:
		if n.IsAsync {
			return "async def " + n.Name
		}
		return "def " + n.Name
	case *nodes.If:
		return "if"
	case *nodes.Elif:
		return "elif"
	case *nodes.Else:
		return "else"
	case *nodes.For:
		if n.IsAsync {
			return "async for"
		}
		return "for"
	case *nodes.While:
		return "while"
	case *nodes.Try:
		return "try"
	case *nodes.ExceptHandler:
		return "except"
	case *nodes.Finally:
		return "finally"
	case *nodes.With:
		if n.IsAsync {
			return "async with"
		}
		return "with"
	case *nodes.Match:
		return "match"
	case *nodes.MatchCase:
		return "case"
	case *nodes.Module:
		return "module"
	default:
		return strings.TrimPrefix(fmt.Sprintf("%T", n), "*nodes.")
	}
}
