// Package object holds the output of assembly: a code segment, a data
// segment and the symbol table describing both.
//
// Segments only grow while assembling. Once a File is frozen for linking,
// any further growth is a programming error and panics.
package object

import (
	"fmt"
)

// File is a single compilation unit.
type File struct {
	code    []byte
	data    []byte
	symbols *SymbolTable
	frozen  bool
}

// NewFile returns an empty object file.
func NewFile() *File {
	return &File{symbols: NewSymbolTable()}
}

// Symbols returns the symbol table.
func (obj *File) Symbols() *SymbolTable {
	return obj.symbols
}

func (obj *File) mutable() {
	if obj.frozen {
		panic(ErrFrozen)
	}
}

// AppendCode appends to the code segment and returns the offset of the
// first appended byte.
func (obj *File) AppendCode(code []byte) (offset int) {
	obj.mutable()

	offset = len(obj.code)
	obj.code = append(obj.code, code...)
	return
}

// AppendData appends one byte to the data segment.
func (obj *File) AppendData(value byte) {
	obj.mutable()

	obj.data = append(obj.data, value)
}

// AppendDataBytes appends to the data segment and returns the offset of
// the first appended byte.
func (obj *File) AppendDataBytes(data []byte) (offset int) {
	obj.mutable()

	offset = len(obj.data)
	obj.data = append(obj.data, data...)
	return
}

// CodeSize returns the code segment size.
func (obj *File) CodeSize() int {
	return len(obj.code)
}

// DataSize returns the data segment size.
func (obj *File) DataSize() int {
	return len(obj.data)
}

func slice(segment []byte, name string, offset, size int) []byte {
	if offset < 0 || size < 0 || offset+size > len(segment) {
		panic(fmt.Errorf("%w: %v [%v:+%v] of %v", ErrSliceBounds, name, offset, size, len(segment)))
	}
	return segment[offset : offset+size : offset+size]
}

// CodeSlice returns a view of the code segment.
func (obj *File) CodeSlice(offset, size int) []byte {
	return slice(obj.code, "code", offset, size)
}

// DataSlice returns a view of the data segment.
func (obj *File) DataSlice(offset, size int) []byte {
	return slice(obj.data, "data", offset, size)
}

// PatchCode overwrites previously emitted code in place.
func (obj *File) PatchCode(offset int, code []byte) {
	obj.mutable()

	copy(slice(obj.code, "code", offset, len(code)), code)
}

// Freeze forbids any further change to the segments.
func (obj *File) Freeze() {
	obj.frozen = true
}

// Frozen reports whether the file was frozen.
func (obj *File) Frozen() bool {
	return obj.frozen
}
