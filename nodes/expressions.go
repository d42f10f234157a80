package nodes

// Call is a function or method call. Call is also a statement so that a bare call can be
// added to a body without wrapping it in an ExprStmt.
type Call struct {
	Func     Expr
	Args     []Expr
	Keywords []*Keyword
}

func NewCall(fn Expr, args ...Expr) *Call {
	return &Call{Func: fn, Args: args}
}

func (*Call) node()            {}
func (*Call) exprNode()        {}
func (*Call) stmtNode()        {}
func (n *Call) String() string { return Repr(n) }

// Keyword is a keyword argument of a call or class definition. An empty Arg unpacks
// Value with **.
type Keyword struct {
	Arg   string
	Value Expr
}

func NewKeyword(arg string, value Expr) *Keyword {
	return &Keyword{Arg: arg, Value: value}
}

func (*Keyword) node()            {}
func (*Keyword) exprNode()        {}
func (n *Keyword) String() string { return Repr(n) }

// BoolOp joins two or more operands with the same boolean operator.
type BoolOp struct {
	Op     Op
	Values []Expr
}

func (*BoolOp) node()            {}
func (*BoolOp) exprNode()        {}
func (n *BoolOp) String() string { return Repr(n) }

// UnaryOp applies a unary operator to a single operand.
type UnaryOp struct {
	Op      Op
	Operand Expr
}

func (*UnaryOp) node()            {}
func (*UnaryOp) exprNode()        {}
func (n *UnaryOp) String() string { return Repr(n) }

// BinOp is a binary arithmetic or bitwise operation.
type BinOp struct {
	Left  Expr
	Op    Op
	Right Expr
}

func NewBinOp(left Expr, op Op, right Expr) *BinOp {
	return &BinOp{Left: left, Op: op, Right: right}
}

func (*BinOp) node()            {}
func (*BinOp) exprNode()        {}
func (n *BinOp) String() string { return Repr(n) }

// Compare is a possibly chained comparison. Ops and Comparators are paired by index.
type Compare struct {
	Left        Expr
	Ops         []Op
	Comparators []Expr
}

func NewCompare(left Expr, op Op, right Expr) *Compare {
	return &Compare{Left: left, Ops: []Op{op}, Comparators: []Expr{right}}
}

func (*Compare) node()            {}
func (*Compare) exprNode()        {}
func (n *Compare) String() string { return Repr(n) }

// Lambda is an anonymous function expression.
type Lambda struct {
	Args *Arguments
	Body Expr
}

func (*Lambda) node()            {}
func (*Lambda) exprNode()        {}
func (n *Lambda) String() string { return Repr(n) }

// IfExp is a conditional expression, body if test else orelse.
type IfExp struct {
	Test   Expr
	Body   Expr
	OrElse Expr
}

func (*IfExp) node()            {}
func (*IfExp) exprNode()        {}
func (n *IfExp) String() string { return Repr(n) }

// Starred is an unpacking expression, *value.
type Starred struct {
	Value Expr
}

func (*Starred) node()            {}
func (*Starred) exprNode()        {}
func (n *Starred) String() string { return Repr(n) }

// NamedExpr is an assignment expression, target := value.
type NamedExpr struct {
	Target Expr
	Value  Expr
}

func (*NamedExpr) node()            {}
func (*NamedExpr) exprNode()        {}
func (n *NamedExpr) String() string { return Repr(n) }

// Await suspends on an awaitable. It is usable both as a value and as a statement.
type Await struct {
	Value Expr
}

func NewAwait(value Expr) *Await {
	return &Await{Value: value}
}

func (*Await) node()            {}
func (*Await) exprNode()        {}
func (*Await) stmtNode()        {}
func (n *Await) String() string { return Repr(n) }

// Yield produces a value from a generator. A nil Value is a bare yield.
type Yield struct {
	Value Expr
}

func NewYield(value Expr) *Yield {
	return &Yield{Value: value}
}

func (*Yield) node()            {}
func (*Yield) exprNode()        {}
func (*Yield) stmtNode()        {}
func (n *Yield) String() string { return Repr(n) }
