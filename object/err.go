package object

import (
	"errors"

	"github.com/ezrec/gbasm/translate"
)

var f = translate.From

var (
	ErrSliceBounds = errors.New(f("segment slice out of bounds"))
	ErrFrozen      = errors.New(f("object file frozen"))
)

// ErrSymbolDuplicate is returned when a symbol name is defined twice.
type ErrSymbolDuplicate string

func (err ErrSymbolDuplicate) Error() string {
	return f("symbol %v duplicated", string(err))
}

// ErrSymbolUndefined is returned when a symbol name is not defined.
type ErrSymbolUndefined string

func (err ErrSymbolUndefined) Error() string {
	return f("symbol %v undefined", string(err))
}

// ErrSymbolKind is returned when a symbol is not of the expected kind.
type ErrSymbolKind struct {
	Name     string
	Expected SymbolKind
}

func (err *ErrSymbolKind) Error() string {
	return f("symbol %v must be defined as %v", err.Name, err.Expected.String())
}
