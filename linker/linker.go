// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package linker places an object file behind a cartridge header and emits
// the final image.
package linker

import (
	"bytes"
	"io"
	"iter"
	"log"

	"github.com/ezrec/gbasm/cartridge"
	"github.com/ezrec/gbasm/object"
)

// Reserved symbol names.
const (
	CodeStart        = "main"                // Label of the program entry.
	ProgramName      = "__program_name"      // String variable of the title.
	ManufacturerCode = "__manufacturer_code" // String variable of the manufacturer code.
)

// BANK_END is the end of the fixed ROM bank; the entry must lie below it.
const BANK_END = 0x8000

// State of a linker. A linker is unlinked until an object file is
// attached, linked until the image is written, and emitted afterwards.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_UNLINKED = State(0) // unlinked
	STATE_LINKED   = State(1) // linked
	STATE_EMITTED  = State(2) // emitted
)

// Linker lays out one object file as a cartridge image:
// header, then data segment, then code segment.
type Linker struct {
	Verbose bool              // If set, logs the link map.
	Header  *cartridge.Header // Header field template; cartridge.Default() if nil.

	state State
	obj   *object.File
}

// Address returns the absolute address of a symbol in the image of obj.
func Address(obj *object.File, sym object.Symbol) int {
	switch sym := sym.(type) {
	case *object.Label:
		return cartridge.HeaderSize + obj.DataSize() + sym.Address
	case *object.Variable:
		return cartridge.HeaderSize + sym.Address
	}
	panic(sym)
}

// State returns the state of the linker.
func (ln *Linker) State() State {
	return ln.state
}

// Attach freezes an object file and makes it the one to emit. Attaching
// again replaces the prior object.
func (ln *Linker) Attach(obj *object.File) {
	obj.Freeze()
	ln.obj = obj
	ln.state = STATE_LINKED
}

// EntryAddress returns the absolute address of the CodeStart label.
func (ln *Linker) EntryAddress() (addr int, err error) {
	if ln.obj == nil {
		err = ErrLinkerState
		return
	}

	label, err := ln.obj.Symbols().Label(CodeStart)
	if err != nil {
		err = &ErrReserved{Name: CodeStart, Err: err}
		return
	}

	addr = Address(ln.obj, label)
	return
}

// text returns the bytes of a reserved string variable, up to any NUL.
func (ln *Linker) text(name string) (value string, err error) {
	variable, err := ln.obj.Symbols().String(name)
	if err != nil {
		err = &ErrReserved{Name: name, Err: err}
		return
	}

	data := ln.obj.DataSlice(variable.Address, variable.Size)
	if n := bytes.IndexByte(data, 0); n >= 0 {
		data = data[:n]
	}
	value = string(data)
	return
}

// Symbols iterates over the absolute addresses of all symbols, by name.
func (ln *Linker) Symbols() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		if ln.obj == nil {
			return
		}
		for name, sym := range ln.obj.Symbols().All() {
			if !yield(name, Address(ln.obj, sym)) {
				return
			}
		}
	}
}

// Image computes the cartridge image. It does not change the linker state.
func (ln *Linker) Image() (image []byte, err error) {
	if ln.obj == nil {
		err = ErrLinkerState
		return
	}

	entry, err := ln.EntryAddress()
	if err != nil {
		return
	}
	if entry >= BANK_END {
		err = ErrEntryRange(entry)
		return
	}

	title, err := ln.text(ProgramName)
	if err != nil {
		return
	}

	manufacturer, err := ln.text(ManufacturerCode)
	if err != nil {
		return
	}

	size := cartridge.HeaderSize + ln.obj.DataSize() + ln.obj.CodeSize()
	romSize, ok := cartridge.ROMSizeCode(size)
	if !ok {
		err = ErrImageSize(size)
		return
	}

	hdr := cartridge.Default()
	if ln.Header != nil {
		hdr = *ln.Header
	}
	hdr.Entry = uint16(entry)
	hdr.Title = title
	hdr.Manufacturer = manufacturer
	hdr.ROMSize = romSize

	image = make([]byte, 0, size)
	image = append(image, hdr.Bytes()...)
	image = append(image, ln.obj.DataSlice(0, ln.obj.DataSize())...)
	image = append(image, ln.obj.CodeSlice(0, ln.obj.CodeSize())...)
	cartridge.Stamp(image)

	if ln.Verbose {
		log.Printf("link: entry %#04x, data %#04x+%#x, code %#04x+%#x, title %q",
			entry,
			cartridge.HeaderSize, ln.obj.DataSize(),
			cartridge.HeaderSize+ln.obj.DataSize(), ln.obj.CodeSize(),
			title)
		for name, addr := range ln.Symbols() {
			log.Printf("link: %#04x %v", addr, name)
		}
	}

	return
}

// Emit writes the image. Only valid when linked; on success the linker
// becomes emitted, on failure it stays linked.
func (ln *Linker) Emit(w io.Writer) (err error) {
	if ln.state != STATE_LINKED {
		err = ErrLinkerState
		return
	}

	image, err := ln.Image()
	if err != nil {
		return
	}

	n, err := w.Write(image)
	if err == nil && n != len(image) {
		err = io.ErrShortWrite
	}
	if err != nil {
		err = &ErrEmit{Err: err}
		return
	}

	ln.state = STATE_EMITTED
	return
}
