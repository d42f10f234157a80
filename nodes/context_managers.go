package nodes

// With is a resource-acquisition block, or async with when IsAsync is set.
type With struct {
	Items   []*WithItem
	Body    []Node
	IsAsync bool
}

func (*With) node()            {}
func (*With) stmtNode()        {}
func (n *With) Stmts() *[]Node { return &n.Body }
func (n *With) String() string { return Repr(n) }

// WithItem is one context manager of a With, optionally bound with as.
type WithItem struct {
	ContextExpr  Expr
	OptionalVars Expr
}

func NewWithItem(contextExpr, optionalVars Expr) *WithItem {
	return &WithItem{ContextExpr: contextExpr, OptionalVars: optionalVars}
}

func (*WithItem) node()            {}
func (n *WithItem) String() string { return Repr(n) }
