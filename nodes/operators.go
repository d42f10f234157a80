package nodes

// Op is an operator used by BoolOp, UnaryOp, BinOp, AugAssign and Compare.
type Op uint8

const (
	// OpNone is the zero value; it renders as an empty token.
	OpNone Op = iota

	// boolean operators
	And
	Or
	Not

	// comparison operators
	Eq
	NotEq
	Lt
	LtE
	Gt
	GtE
	Is
	IsNot
	In
	NotIn

	// binary operators
	Add
	Sub
	Mult
	Div
	FloorDiv
	Mod
	Pow
	MatMult
	LShift
	RShift
	BitOr
	BitXor
	BitAnd

	// unary operators
	UAdd
	USub
	Invert

	maximumOp = Invert
)

var opTokens = [...]string{
	OpNone:   "",
	And:      "and",
	Or:       "or",
	Not:      "not",
	Eq:       "==",
	NotEq:    "!=",
	Lt:       "<",
	LtE:      "<=",
	Gt:       ">",
	GtE:      ">=",
	Is:       "is",
	IsNot:    "is not",
	In:       "in",
	NotIn:    "not in",
	Add:      "+",
	Sub:      "-",
	Mult:     "*",
	Div:      "/",
	FloorDiv: "//",
	Mod:      "%",
	Pow:      "**",
	MatMult:  "@",
	LShift:   "<<",
	RShift:   ">>",
	BitOr:    "|",
	BitXor:   "^",
	BitAnd:   "&",
	UAdd:     "+",
	USub:     "-",
	Invert:   "~",
}

// String returns the source token of the operator.
func (o Op) String() string {
	if o > maximumOp {
		return "<unknown op>"
	}
	return opTokens[o]
}

// IsComparison reports whether o may appear in Compare.Ops.
func (o Op) IsComparison() bool {
	return o >= Eq && o <= NotIn
}

// IsBoolean reports whether o may appear in BoolOp.Op.
func (o Op) IsBoolean() bool {
	return o == And || o == Or
}

// IsUnary reports whether o may appear in UnaryOp.Op.
func (o Op) IsUnary() bool {
	return o == Not || o >= UAdd && o <= Invert
}
