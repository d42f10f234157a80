package nodes

// Constant is a literal value: a number, string, bytes, boolean or None.
//
// Value may hold nil, bool, any Go integer or float type, string, []byte or a
// decimal.Decimal. Kind is an optional literal prefix written before the opening quote
// of a string, for example "f" for a formatted string literal.
type Constant struct {
	Value any
	Kind  string
}

func NewConstant(value any) *Constant {
	return &Constant{Value: value}
}

// NewFString returns a formatted string literal.
func NewFString(format string) *Constant {
	return &Constant{Value: format, Kind: "f"}
}

func (*Constant) node()            {}
func (*Constant) exprNode()        {}
func (n *Constant) String() string { return Repr(n) }

// Name is a reference to a variable, function, class or any other identifier.
type Name struct {
	ID string
}

func NewName(id string) *Name {
	return &Name{ID: id}
}

func (*Name) node()            {}
func (*Name) exprNode()        {}
func (n *Name) String() string { return Repr(n) }

// Attribute is an attribute access, value.attr.
type Attribute struct {
	Value Expr
	Attr  string
}

func NewAttribute(value Expr, attr string) *Attribute {
	return &Attribute{Value: value, Attr: attr}
}

func (*Attribute) node()            {}
func (*Attribute) exprNode()        {}
func (n *Attribute) String() string { return Repr(n) }

// Subscript is an index or slice access, value[slice].
type Subscript struct {
	Value Expr
	Slice Expr
}

func NewSubscript(value, slice Expr) *Subscript {
	return &Subscript{Value: value, Slice: slice}
}

func (*Subscript) node()            {}
func (*Subscript) exprNode()        {}
func (n *Subscript) String() string { return Repr(n) }

// Slice is the lower:upper:step part of a subscript. Every bound is optional.
type Slice struct {
	Lower Expr
	Upper Expr
	Step  Expr
}

func (*Slice) node()            {}
func (*Slice) exprNode()        {}
func (n *Slice) String() string { return Repr(n) }

// Dict is a dictionary display. A nil key unpacks the matching value with **.
type Dict struct {
	Keys   []Expr
	Values []Expr
}

func (*Dict) node()            {}
func (*Dict) exprNode()        {}
func (n *Dict) String() string { return Repr(n) }

// List is a list display.
type List struct {
	Elts []Expr
}

func NewList(elts ...Expr) *List {
	return &List{Elts: elts}
}

func (*List) node()            {}
func (*List) exprNode()        {}
func (n *List) String() string { return Repr(n) }

// Set is a set display.
type Set struct {
	Elts []Expr
}

func (*Set) node()            {}
func (*Set) exprNode()        {}
func (n *Set) String() string { return Repr(n) }

// Tuple is a tuple display.
type Tuple struct {
	Elts []Expr
}

func NewTuple(elts ...Expr) *Tuple {
	return &Tuple{Elts: elts}
}

func (*Tuple) node()            {}
func (*Tuple) exprNode()        {}
func (n *Tuple) String() string { return Repr(n) }
