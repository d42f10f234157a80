// codegen is a library that creates syntax tree nodes in specific repeatable ways.
// This library is a common place for logic around how frequently generated constructs
// (imports, docstrings, dotted references, entry point guards) are assembled out of the
// node model. Any helper that only assembles pre-built nodes should be added here. When
// implementing functions for this library, the following rules should apply:
//
// 1. Every call returns freshly allocated nodes. A node must never be shared between two
// parents, so helpers never return a node they were given as part of a new subtree
// without the caller's knowledge.
// 2. Please add a comment header about what the output of your function is and what it does.
// All exported functions MUST be documented in way that is compatible with `godoc`.
// 3. Unit tests can be basic since the generated nodes are also covered by the generator
// tests. A test that renders the output and checks the text is a good safeguard.
package codegen
