package nodes

// Module is a whole source file. Rendering a Module renders its body at the current
// depth.
type Module struct {
	Body []Node
}

func (*Module) node()            {}
func (*Module) stmtNode()        {}
func (n *Module) Stmts() *[]Node { return &n.Body }
func (n *Module) String() string { return Repr(n) }

// Nodes returns the top-level statements, so a Module can be passed anywhere a builder's
// output is accepted.
func (n *Module) Nodes() []Node { return n.Body }
