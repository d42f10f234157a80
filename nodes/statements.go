package nodes

// Pass is the no-op statement. The builder inserts it into bodies that would otherwise
// be empty.
type Pass struct{}

func (*Pass) node()            {}
func (*Pass) stmtNode()        {}
func (n *Pass) String() string { return Repr(n) }

// Return exits a function. A nil Value is a bare return.
type Return struct {
	Value Expr
}

func NewReturn(value Expr) *Return {
	return &Return{Value: value}
}

func (*Return) node()            {}
func (*Return) stmtNode()        {}
func (n *Return) String() string { return Repr(n) }

type Break struct{}

func (*Break) node()            {}
func (*Break) stmtNode()        {}
func (n *Break) String() string { return Repr(n) }

type Continue struct{}

func (*Continue) node()            {}
func (*Continue) stmtNode()        {}
func (n *Continue) String() string { return Repr(n) }

// Delete removes names, attributes or subscripts.
type Delete struct {
	Targets []Expr
}

func (*Delete) node()            {}
func (*Delete) stmtNode()        {}
func (n *Delete) String() string { return Repr(n) }

type Global struct {
	Names []string
}

func (*Global) node()            {}
func (*Global) stmtNode()        {}
func (n *Global) String() string { return Repr(n) }

type Nonlocal struct {
	Names []string
}

func (*Nonlocal) node()            {}
func (*Nonlocal) stmtNode()        {}
func (n *Nonlocal) String() string { return Repr(n) }

// Comment is a line comment. Text excludes the leading marker; an empty Text renders
// nothing.
type Comment struct {
	Text string
}

func NewComment(text string) *Comment {
	return &Comment{Text: text}
}

func (*Comment) node()            {}
func (*Comment) stmtNode()        {}
func (n *Comment) String() string { return Repr(n) }

// ExprStmt is an expression evaluated for its side effects.
type ExprStmt struct {
	Value Expr
}

func NewExprStmt(value Expr) *ExprStmt {
	return &ExprStmt{Value: value}
}

func (*ExprStmt) node()            {}
func (*ExprStmt) stmtNode()        {}
func (n *ExprStmt) String() string { return Repr(n) }

// Raise raises Exc, optionally chained from Cause. A nil Exc re-raises.
type Raise struct {
	Exc   Expr
	Cause Expr
}

func NewRaise(exc Expr) *Raise {
	return &Raise{Exc: exc}
}

func (*Raise) node()            {}
func (*Raise) stmtNode()        {}
func (n *Raise) String() string { return Repr(n) }

type Assert struct {
	Test Expr
	Msg  Expr
}

func (*Assert) node()            {}
func (*Assert) stmtNode()        {}
func (n *Assert) String() string { return Repr(n) }
