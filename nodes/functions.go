package nodes

// Arg is a single parameter of a function or lambda.
type Arg struct {
	Name       string
	Annotation Expr
	Default    Expr
}

func NewArg(name string) *Arg {
	return &Arg{Name: name}
}

// NewTypedArg returns a parameter with a type annotation.
func NewTypedArg(name string, annotation Expr) *Arg {
	return &Arg{Name: name, Annotation: annotation}
}

func (*Arg) node()            {}
func (n *Arg) String() string { return Repr(n) }

// Arguments is the full parameter specification of a function or lambda.
//
// Defaults apply to the trailing parameters of PosOnlyArgs followed by Args. KwDefaults
// is paired with KwOnlyArgs by index; a nil entry means the keyword-only parameter is
// required. An Arg's own Default takes precedence over both lists.
type Arguments struct {
	PosOnlyArgs []*Arg
	Args        []*Arg
	VarArg      *Arg
	KwOnlyArgs  []*Arg
	KwDefaults  []Expr
	KwArg       *Arg
	Defaults    []Expr
}

// NewArguments returns a parameter list made of plain positional parameters.
func NewArguments(args ...*Arg) *Arguments {
	return &Arguments{Args: args}
}

func (*Arguments) node()            {}
func (n *Arguments) String() string { return Repr(n) }

// FunctionDef is a function or, when IsAsync is set, a coroutine definition.
type FunctionDef struct {
	Name       string
	Args       *Arguments
	Body       []Node
	Returns    Expr
	Decorators []Expr
	TypeParams []Expr
	IsAsync    bool
}

func (*FunctionDef) node()            {}
func (*FunctionDef) stmtNode()        {}
func (n *FunctionDef) Stmts() *[]Node { return &n.Body }
func (n *FunctionDef) String() string { return Repr(n) }

// ClassDef is a class definition. Keywords hold class arguments such as metaclass.
type ClassDef struct {
	Name       string
	Bases      []Expr
	Keywords   []*Keyword
	Body       []Node
	Decorators []Expr
	TypeParams []Expr
}

func (*ClassDef) node()            {}
func (*ClassDef) stmtNode()        {}
func (n *ClassDef) Stmts() *[]Node { return &n.Body }
func (n *ClassDef) String() string { return Repr(n) }

// TypeParam is a generic type parameter with an optional bound.
type TypeParam struct {
	Name  string
	Bound Expr
}

func NewTypeParam(name string) *TypeParam {
	return &TypeParam{Name: name}
}

func (*TypeParam) node()            {}
func (*TypeParam) exprNode()        {}
func (n *TypeParam) String() string { return Repr(n) }
