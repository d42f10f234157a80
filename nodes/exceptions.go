package nodes

// Try is a protected block with its handler, success (OrElse) and cleanup (FinalBody)
// clauses.
type Try struct {
	Body      []Node
	Handlers  []*ExceptHandler
	OrElse    []Node
	FinalBody []Node
}

func (*Try) node()            {}
func (*Try) stmtNode()        {}
func (n *Try) Stmts() *[]Node { return &n.Body }
func (n *Try) String() string { return Repr(n) }

// ExceptHandler is a handler clause of a Try. A nil Type is a bare handler; Name binds
// the caught exception and only renders when Type is set.
type ExceptHandler struct {
	Type Expr
	Name string
	Body []Node
}

func (*ExceptHandler) node()            {}
func (n *ExceptHandler) Stmts() *[]Node { return &n.Body }
func (n *ExceptHandler) String() string { return Repr(n) }

// Finally accumulates the statements of a cleanup clause while its scope is open.
// They are moved into the parent Try's FinalBody when the scope closes.
type Finally struct {
	Body []Node
}

func (*Finally) node()            {}
func (n *Finally) Stmts() *[]Node { return &n.Body }
func (n *Finally) String() string { return Repr(n) }
