package nodes

// If is a conditional statement.
//
// OrElse is the continuation list. It holds Elif nodes for each else-if clause followed
// by the statements of the final else clause, if any. It is populated by the builder
// when continuation scopes close.
type If struct {
	Test   Expr
	Body   []Node
	OrElse []Node
}

func NewIf(test Expr) *If {
	return &If{Test: test}
}

func (*If) node()            {}
func (*If) stmtNode()        {}
func (n *If) Stmts() *[]Node { return &n.Body }
func (n *If) String() string { return Repr(n) }

// Elif is an else-if continuation. It has the same shape as If so that further
// continuations can nest inside it.
type Elif struct {
	Test   Expr
	Body   []Node
	OrElse []Node
}

func (*Elif) node()            {}
func (*Elif) stmtNode()        {}
func (n *Elif) Stmts() *[]Node { return &n.Body }
func (n *Elif) String() string { return Repr(n) }

// Else is a fragment that only exists while an else scope is open. When the scope
// closes its statements are moved into the parent's OrElse and the wrapper is dropped.
type Else struct {
	Body []Node
}

func (*Else) node()            {}
func (n *Else) Stmts() *[]Node { return &n.Body }
func (n *Else) String() string { return Repr(n) }

// Match is a structural pattern matching statement.
type Match struct {
	Subject Expr
	Cases   []*MatchCase
}

func (*Match) node()            {}
func (*Match) stmtNode()        {}
func (n *Match) String() string { return Repr(n) }

// MatchCase is a single case clause of a Match, with an optional guard.
type MatchCase struct {
	Pattern Expr
	Guard   Expr
	Body    []Node
}

func (*MatchCase) node()            {}
func (n *MatchCase) Stmts() *[]Node { return &n.Body }
func (n *MatchCase) String() string { return Repr(n) }
