package object

import (
	"iter"
	"maps"
	"slices"
)

// SymbolTable maps case-sensitive names to symbols. It only grows.
type SymbolTable struct {
	symbols map[string]Symbol
}

// NewSymbolTable returns an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]Symbol, 16)}
}

// Define adds a symbol.
func (st *SymbolTable) Define(sym Symbol) (err error) {
	name := sym.SymbolName()
	if _, ok := st.symbols[name]; ok {
		err = ErrSymbolDuplicate(name)
		return
	}

	st.symbols[name] = sym
	return
}

// IsDefined reports whether a name is defined.
func (st *SymbolTable) IsDefined(name string) bool {
	_, ok := st.symbols[name]
	return ok
}

// Lookup returns the symbol of a name.
func (st *SymbolTable) Lookup(name string) (sym Symbol, err error) {
	sym, ok := st.symbols[name]
	if !ok {
		err = ErrSymbolUndefined(name)
	}
	return
}

// Expect returns the symbol of a name, which must be of a given kind.
func (st *SymbolTable) Expect(name string, kind SymbolKind) (sym Symbol, err error) {
	sym, err = st.Lookup(name)
	if err != nil {
		return
	}

	if !sym.Is(kind) {
		sym = nil
		err = &ErrSymbolKind{Name: name, Expected: kind}
	}
	return
}

// Label returns the label of a name.
func (st *SymbolTable) Label(name string) (label *Label, err error) {
	sym, err := st.Expect(name, SYMBOL_LABEL)
	if err != nil {
		return
	}
	return sym.(*Label), nil
}

// Variable returns the variable of a name, of any kind.
func (st *SymbolTable) Variable(name string) (variable *Variable, err error) {
	sym, err := st.Expect(name, SYMBOL_VARIABLE)
	if err != nil {
		return
	}
	return sym.(*Variable), nil
}

// String returns the string variable of a name.
func (st *SymbolTable) String(name string) (variable *Variable, err error) {
	sym, err := st.Expect(name, SYMBOL_STRING)
	if err != nil {
		return
	}
	return sym.(*Variable), nil
}

// Len returns the number of symbols.
func (st *SymbolTable) Len() int {
	return len(st.symbols)
}

// All iterates over the symbols sorted by name.
func (st *SymbolTable) All() iter.Seq2[string, Symbol] {
	return func(yield func(name string, sym Symbol) bool) {
		for _, name := range slices.Sorted(maps.Keys(st.symbols)) {
			if !yield(name, st.symbols[name]) {
				return
			}
		}
	}
}
