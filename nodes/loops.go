package nodes

// For is a for loop, or an async for loop when IsAsync is set. OrElse holds the
// statements of the exhaustion clause.
type For struct {
	Target  Expr
	Iter    Expr
	Body    []Node
	OrElse  []Node
	IsAsync bool
}

func NewFor(target, iter Expr) *For {
	return &For{Target: target, Iter: iter}
}

func (*For) node()            {}
func (*For) stmtNode()        {}
func (n *For) Stmts() *[]Node { return &n.Body }
func (n *For) String() string { return Repr(n) }

// While is a while loop. OrElse holds the statements of the exhaustion clause.
type While struct {
	Test   Expr
	Body   []Node
	OrElse []Node
}

func NewWhile(test Expr) *While {
	return &While{Test: test}
}

func (*While) node()            {}
func (*While) stmtNode()        {}
func (n *While) Stmts() *[]Node { return &n.Body }
func (n *While) String() string { return Repr(n) }
