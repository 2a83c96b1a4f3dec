package object

// SymbolKind names the kinds of symbol a caller may require.
type SymbolKind int

//go:generate go tool stringer -linecomment -type=SymbolKind
const (
	SYMBOL_LABEL    = SymbolKind(0) // label
	SYMBOL_VARIABLE = SymbolKind(1) // variable
	SYMBOL_STRING   = SymbolKind(2) // string variable
)

// VariableKind is the declared type of a variable.
type VariableKind int

//go:generate go tool stringer -linecomment -type=VariableKind
const (
	VARIABLE_NUMBER = VariableKind(0) // number
	VARIABLE_STRING = VariableKind(1) // string
)

// Symbol is either a *Label or a *Variable.
//
// Addresses are segment relative: labels are offsets into the code segment,
// variables offsets into the data segment.
type Symbol interface {
	SymbolName() string
	SymbolAddress() int
	Is(kind SymbolKind) bool
	symbol()
}

// Label is a code segment offset.
type Label struct {
	Name    string
	Address int
}

func (sym *Label) SymbolName() string      { return sym.Name }
func (sym *Label) SymbolAddress() int      { return sym.Address }
func (sym *Label) Is(kind SymbolKind) bool { return kind == SYMBOL_LABEL }
func (sym *Label) symbol()                 {}

// Variable is a data segment region.
type Variable struct {
	Name    string
	Address int
	Size    int
	Kind    VariableKind
}

func (sym *Variable) SymbolName() string { return sym.Name }
func (sym *Variable) SymbolAddress() int { return sym.Address }

func (sym *Variable) Is(kind SymbolKind) bool {
	switch kind {
	case SYMBOL_VARIABLE:
		return true
	case SYMBOL_STRING:
		return sym.Kind == VARIABLE_STRING
	}
	return false
}

func (sym *Variable) symbol() {}
