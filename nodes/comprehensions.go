package nodes

// Comprehension is one for clause of a comprehension, with its if filters.
type Comprehension struct {
	Target  Expr
	Iter    Expr
	Ifs     []Expr
	IsAsync bool
}

func NewComprehension(target, iter Expr, ifs ...Expr) *Comprehension {
	return &Comprehension{Target: target, Iter: iter, Ifs: ifs}
}

func (*Comprehension) node()            {}
func (n *Comprehension) String() string { return Repr(n) }

// ListComp is a list comprehension, [elt for ...].
type ListComp struct {
	Elt        Expr
	Generators []*Comprehension
}

func (*ListComp) node()            {}
func (*ListComp) exprNode()        {}
func (n *ListComp) String() string { return Repr(n) }

// SetComp is a set comprehension, {elt for ...}.
type SetComp struct {
	Elt        Expr
	Generators []*Comprehension
}

func (*SetComp) node()            {}
func (*SetComp) exprNode()        {}
func (n *SetComp) String() string { return Repr(n) }

// DictComp is a dictionary comprehension, {key: value for ...}.
type DictComp struct {
	Key        Expr
	Value      Expr
	Generators []*Comprehension
}

func (*DictComp) node()            {}
func (*DictComp) exprNode()        {}
func (n *DictComp) String() string { return Repr(n) }

// GeneratorExp is a generator expression, (elt for ...).
type GeneratorExp struct {
	Elt        Expr
	Generators []*Comprehension
}

func (*GeneratorExp) node()            {}
func (*GeneratorExp) exprNode()        {}
func (n *GeneratorExp) String() string { return Repr(n) }
