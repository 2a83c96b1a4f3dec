package assembler

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/gbasm/cartridge"
	"github.com/ezrec/gbasm/instruction"
	"github.com/ezrec/gbasm/object"
	"github.com/ezrec/gbasm/operand"
)

func TestAssemblerForward(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	asm := &Assembler{}

	require.NoError(asm.String("__program_name", "T"))
	require.NoError(asm.Label("main"))
	require.NoError(asm.Instruction("JP", "later"))
	require.NoError(asm.Instruction("NOP"))
	require.NoError(asm.Label("later"))
	require.NoError(asm.Instruction("JR", "main"))
	require.NoError(asm.Instruction("LD", "A", "(__program_name)"))

	obj, err := asm.Finish()
	require.NoError(err)

	assert.Equal(2, obj.DataSize())
	assert.Equal([]byte{'T', 0}, obj.DataSlice(0, 2))
	assert.Equal([]byte{
		0xc3, 0x56, 0x01, // JP later
		0x00,       // NOP
		0x18, 0xfa, // JR main
		0xfa, 0x50, 0x01, // LD A,(__program_name)
	}, obj.CodeSlice(0, obj.CodeSize()))

	label, err := obj.Symbols().Label("later")
	assert.NoError(err)
	assert.Equal(4, label.Address)

	listing := asm.Listing()
	if assert.Len(listing, 4) {
		assert.Equal([]byte{0xc3, 0x56, 0x01}, listing[0].Code)
		assert.Equal(cartridge.HeaderSize+2, listing[0].Address)
		assert.Equal([]string{"JP", "later"}, listing[0].Words)
		assert.Equal(uint16(0xc3), listing[0].Template.Code)
		assert.Equal(3, listing[1].Offset)
		assert.Equal([]byte{0x18, 0xfa}, listing[2].Code)
	}
}

func TestAssemblerDataAfterCode(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	asm := &Assembler{}

	require.NoError(asm.Label("main"))
	require.NoError(asm.Instruction("CALL", "main"))
	require.NoError(asm.Instruction("LD", "HL", "table"))
	require.NoError(asm.Data("table", object.VARIABLE_NUMBER, []byte{1, 2, 3}))
	require.NoError(asm.String("name", "AB"))

	obj, err := asm.Finish()
	require.NoError(err)

	// Labels move behind all of the data; variables do not.
	main := cartridge.HeaderSize + 3 + 3
	table := cartridge.HeaderSize
	assert.Equal([]byte{
		0xcd, byte(main), byte(main >> 8),
		0x21, byte(table), byte(table >> 8),
	}, obj.CodeSlice(0, 6))

	name, err := obj.Symbols().String("name")
	assert.NoError(err)
	assert.Equal(3, name.Address)
	assert.Equal(3, name.Size)
	assert.Equal([]byte("AB\x00"), obj.DataSlice(3, 3))

	// A finished assembler starts a new object file.
	require.NoError(asm.Instruction("NOP"))
	obj, err = asm.Finish()
	require.NoError(err)
	assert.Equal(1, obj.CodeSize())
	assert.Equal(0, obj.DataSize())
	assert.Len(asm.Listing(), 1)
}

func TestAssemblerFixupErrors(t *testing.T) {
	assert := assert.New(t)

	// Undefined.
	asm := &Assembler{}
	assert.NoError(asm.Instruction("JP", "nowhere"))
	obj, err := asm.Finish()
	assert.Nil(obj)
	var fix *ErrFixup
	if assert.ErrorAs(err, &fix) {
		assert.Equal("nowhere", fix.Symbol)
	}
	var undefined object.ErrSymbolUndefined
	assert.ErrorAs(err, &undefined)

	// Jumps require labels.
	asm = &Assembler{}
	assert.NoError(asm.String("text", "hi"))
	assert.NoError(asm.Instruction("JP", "text"))
	_, err = asm.Finish()
	var kind *object.ErrSymbolKind
	if assert.ErrorAs(err, &kind) {
		assert.Equal(object.SYMBOL_LABEL, kind.Expected)
	}

	// Relative reach.
	asm = &Assembler{}
	assert.NoError(asm.Label("start"))
	for range 130 {
		assert.NoError(asm.Instruction("NOP"))
	}
	assert.NoError(asm.Instruction("JR", "start"))
	_, err = asm.Finish()
	var rangeErr *operand.ErrOperandRange
	if assert.ErrorAs(err, &rangeErr) {
		assert.Equal(-128, rangeErr.Min)
		assert.Equal(127, rangeErr.Max)
	}

	// Just in reach.
	asm = &Assembler{}
	assert.NoError(asm.Label("start"))
	for range 126 {
		assert.NoError(asm.Instruction("NOP"))
	}
	assert.NoError(asm.Instruction("JR", "start"))
	obj, err = asm.Finish()
	assert.NoError(err)
	assert.Equal([]byte{0x18, 0x80}, obj.CodeSlice(126, 2))
}

func TestAssemblerSymbols(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	assert.NoError(asm.Label("main"))

	var duplicate object.ErrSymbolDuplicate
	assert.ErrorAs(asm.Label("main"), &duplicate)
	assert.ErrorAs(asm.String("main", "x"), &duplicate)

	for _, name := range []string{"A", "hl", "1abc", "10h", "", "a b"} {
		var badName ErrSymbolName
		assert.ErrorAs(asm.Label(name), &badName, name)
	}

	// Nothing was appended by the failures.
	obj, err := asm.Finish()
	assert.NoError(err)
	assert.Equal(0, obj.DataSize())
	assert.Equal(1, obj.Symbols().Len())
}

func TestAssemblerInstructionErrors(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	var unknown *instruction.ErrInstructionUnrecognized
	assert.ErrorAs(asm.Instruction("FOO", "A"), &unknown)

	var rangeErr *operand.ErrOperandRange
	assert.ErrorAs(asm.Instruction("LD", "A", "300"), &rangeErr)

	obj, err := asm.Finish()
	assert.NoError(err)
	assert.Equal(0, obj.CodeSize())
}

func TestAssemblerDatabase(t *testing.T) {
	assert := assert.New(t)

	nop, err := instruction.NewTemplate(instruction.Definition{Code: 0x00, Mnemonic: "NOP", Cycles: 4, Flags: "----"})
	assert.NoError(err)

	asm := &Assembler{Database: instruction.NewDatabase(nop)}
	assert.NoError(asm.Instruction("nop"))

	var unknown *instruction.ErrInstructionUnrecognized
	assert.ErrorAs(asm.Instruction("HALT"), &unknown)
}

func TestListingWrite(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	assert.NoError(asm.Label("main"))
	assert.NoError(asm.Instruction("JP", "main"))
	assert.NoError(asm.Instruction("LD", "A", "B"))
	_, err := asm.Finish()
	assert.NoError(err)

	var out bytes.Buffer
	n, err := asm.Listing().WriteTo(&out)
	assert.NoError(err)
	assert.Equal(int64(out.Len()), n)

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	if assert.Len(lines, 2) {
		assert.Contains(string(lines[0]), "0150  C3 50 01")
		assert.Contains(string(lines[0]), "JP main")
		assert.Contains(string(lines[1]), "0153  78")
		assert.Contains(string(lines[1]), "LD A,B")
	}
}
