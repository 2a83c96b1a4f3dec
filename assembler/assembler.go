// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package assembler drives the assembly phase: it matches commands against
// the instruction database, appends their encodings to an object file and
// resolves symbolic operands once every symbol is known.
package assembler

import (
	"log"
	"strings"

	"github.com/ezrec/gbasm/instruction"
	"github.com/ezrec/gbasm/linker"
	"github.com/ezrec/gbasm/object"
	"github.com/ezrec/gbasm/operand"
)

// fixup is a symbolic operand waiting for its symbol's address.
type fixup struct {
	LineNo    int
	Offset    int // Code offset of the operand payload.
	End       int // Code offset following the instruction.
	Reloc     operand.Reloc
	Symbol    string
	LabelOnly bool
}

// Assembler builds one object file.
type Assembler struct {
	Verbose  bool                  // If set, verbosely logs the assembler actions.
	Database *instruction.Database // Instruction set; instruction.Default if nil.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.

	obj     *object.File
	fixups  []fixup
	listing Listing
	lineno  int
}

// database returns the instruction set in use.
func (asm *Assembler) database() *instruction.Database {
	if asm.Database == nil {
		return instruction.Default
	}
	return asm.Database
}

// file returns the object file under construction, starting a new one
// after Finish.
func (asm *Assembler) file() *object.File {
	if asm.obj == nil {
		asm.obj = object.NewFile()
		asm.fixups = nil
		asm.listing = nil
	}
	return asm.obj
}

// define adds a symbol after checking its name.
func (asm *Assembler) define(sym object.Symbol) (err error) {
	name := sym.SymbolName()
	if !operand.IsSymbol(name) {
		err = ErrSymbolName(name)
		return
	}

	err = asm.file().Symbols().Define(sym)
	return
}

// Label defines a label at the current end of the code segment.
func (asm *Assembler) Label(name string) (err error) {
	obj := asm.file()
	err = asm.define(&object.Label{Name: name, Address: obj.CodeSize()})
	if err != nil {
		return
	}

	if asm.Verbose {
		log.Printf("asm: %04x: %v:", obj.CodeSize(), name)
	}
	return
}

// Data appends a variable to the data segment.
func (asm *Assembler) Data(name string, kind object.VariableKind, data []byte) (err error) {
	obj := asm.file()
	if obj.Symbols().IsDefined(name) {
		err = object.ErrSymbolDuplicate(name)
		return
	}

	err = asm.define(&object.Variable{Name: name, Address: obj.DataSize(), Size: len(data), Kind: kind})
	if err != nil {
		return
	}

	obj.AppendDataBytes(data)

	if asm.Verbose {
		log.Printf("asm: data %04x: %v %v[%v]", obj.DataSize()-len(data), name, kind, len(data))
	}
	return
}

// String appends a NUL terminated string variable to the data segment.
func (asm *Assembler) String(name string, text string) (err error) {
	data := append([]byte(text), 0)
	err = asm.Data(name, object.VARIABLE_STRING, data)
	return
}

// Instruction encodes a command at the end of the code segment.
//
// Symbolic operands are encoded as zero and patched by Finish.
func (asm *Assembler) Instruction(mnemonic string, operands ...string) (err error) {
	obj := asm.file()

	tmpl, code, err := asm.database().Assemble(mnemonic, operands)
	if err != nil {
		return
	}

	offset := obj.AppendCode(code)

	payload := offset + len(tmpl.Opcode())
	for n, op := range tmpl.Operands {
		reloc, ok := op.(operand.Relocatable)
		if ok && reloc.Reloc(operands[n]) != operand.RELOC_NONE {
			asm.fixups = append(asm.fixups, fixup{
				LineNo:    asm.lineno,
				Offset:    payload,
				End:       offset + tmpl.Size,
				Reloc:     reloc.Reloc(operands[n]),
				Symbol:    reloc.Symbol(operands[n]),
				LabelOnly: reloc.LabelOnly(),
			})
		}
		payload += op.Size()
	}

	asm.listing = append(asm.listing, Record{
		LineNo:   asm.lineno,
		Offset:   offset,
		Words:    append([]string{mnemonic}, operands...),
		Template: tmpl,
	})

	if asm.Verbose {
		log.Printf("asm: %04x: %v %v", offset, tmpl.Mnemonic, strings.Join(operands, ","))
	}

	return
}

// resolve patches one symbolic operand.
func (asm *Assembler) resolve(fix fixup) (err error) {
	obj := asm.obj
	st := obj.Symbols()

	defer func() {
		if err != nil {
			err = &ErrFixup{LineNo: fix.LineNo, Symbol: fix.Symbol, Err: err}
		}
	}()

	var sym object.Symbol
	if fix.LabelOnly {
		var label *object.Label
		label, err = st.Label(fix.Symbol)
		if err != nil {
			return
		}
		sym = label
	} else {
		sym, err = st.Lookup(fix.Symbol)
		if err != nil {
			return
		}
	}

	switch fix.Reloc {
	case operand.RELOC_ABSOLUTE:
		addr := linker.Address(obj, sym)
		if addr > 0xffff {
			err = &operand.ErrOperandRange{Token: fix.Symbol, Min: 0, Max: 0xffff}
			return
		}
		obj.PatchCode(fix.Offset, []byte{byte(addr), byte(addr >> 8)})
	case operand.RELOC_RELATIVE:
		disp := sym.SymbolAddress() - fix.End
		if disp < -128 || disp > 127 {
			err = &operand.ErrOperandRange{Token: fix.Symbol, Min: -128, Max: 127}
			return
		}
		obj.PatchCode(fix.Offset, []byte{byte(int8(disp))})
	}

	if asm.Verbose {
		log.Printf("asm: fixup %04x: %v", fix.Offset, fix.Symbol)
	}

	return
}

// Finish resolves all symbolic operands and returns the object file. The
// next use of the assembler starts a new object file.
func (asm *Assembler) Finish() (obj *object.File, err error) {
	obj = asm.file()

	for _, fix := range asm.fixups {
		err = asm.resolve(fix)
		if err != nil {
			obj = nil
			return
		}
	}

	for n := range asm.listing {
		record := &asm.listing[n]
		record.Code = append([]byte(nil), obj.CodeSlice(record.Offset, record.Template.Size)...)
		record.Address = linker.Address(obj, &object.Label{Address: record.Offset})
	}

	asm.obj = nil
	asm.fixups = nil

	return
}

// Listing returns the listing of the last finished object file.
func (asm *Assembler) Listing() Listing {
	return asm.listing
}
