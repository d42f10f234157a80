package nodes

// Assign binds Value to every target, left to right. Comment is written inline after
// the statement when non-empty.
type Assign struct {
	Targets []Expr
	Value   Expr
	Comment string
}

func NewAssign(target, value Expr) *Assign {
	return &Assign{Targets: []Expr{target}, Value: value}
}

func (*Assign) node()            {}
func (*Assign) stmtNode()        {}
func (n *Assign) String() string { return Repr(n) }

// AugAssign is an augmented assignment such as x += 1.
type AugAssign struct {
	Target  Expr
	Op      Op
	Value   Expr
	Comment string
}

func (*AugAssign) node()            {}
func (*AugAssign) stmtNode()        {}
func (n *AugAssign) String() string { return Repr(n) }

// AnnAssign is an annotated assignment, target: annotation = value. Value is optional.
// Simple mirrors the target grammar's flag for a plain name target and is not used
// when rendering.
type AnnAssign struct {
	Target     string
	Annotation Expr
	Simple     int
	Value      Expr
	Comment    string
}

func NewAnnAssign(target string, annotation, value Expr) *AnnAssign {
	return &AnnAssign{Target: target, Annotation: annotation, Simple: 1, Value: value}
}

func (*AnnAssign) node()            {}
func (*AnnAssign) stmtNode()        {}
func (n *AnnAssign) String() string { return Repr(n) }
