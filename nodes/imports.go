package nodes

// Import is an import statement for one or more modules.
type Import struct {
	Names []*Alias
}

func (*Import) node()            {}
func (*Import) stmtNode()        {}
func (n *Import) String() string { return Repr(n) }

// ImportFrom imports names from Module. Level is the number of leading dots of a
// relative import.
type ImportFrom struct {
	Module string
	Names  []*Alias
	Level  int
}

func (*ImportFrom) node()            {}
func (*ImportFrom) stmtNode()        {}
func (n *ImportFrom) String() string { return Repr(n) }

// Alias is an imported name with an optional local name.
type Alias struct {
	Name   string
	AsName string
}

func NewAlias(name string) *Alias {
	return &Alias{Name: name}
}

func (*Alias) node()            {}
func (n *Alias) String() string { return Repr(n) }

// ImportGroup renders a run of import statements together.
type ImportGroup struct {
	Imports []Stmt
}

func (*ImportGroup) node()            {}
func (*ImportGroup) stmtNode()        {}
func (n *ImportGroup) String() string { return Repr(n) }
