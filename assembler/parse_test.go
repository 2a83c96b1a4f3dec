package assembler

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/gbasm/cartridge"
	"github.com/ezrec/gbasm/instruction"
	"github.com/ezrec/gbasm/linker"
	"github.com/ezrec/gbasm/object"
	"github.com/ezrec/gbasm/operand"
)

func parse(t *testing.T, asm *Assembler, program ...string) (*object.File, error) {
	t.Helper()
	return asm.Parse(strings.NewReader(strings.Join(program, "\n")))
}

func TestParseEmpty(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	obj, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, obj.CodeSize())
	assert.Equal(0, obj.DataSize())

	assert.Equal("0", asm.Equate["LINENO"])
	assert.Equal("0150h", asm.Equate["HEADER_SIZE"])
	assert.Equal("0FF40h", asm.Equate["rLCDC"])
}

func TestParseProgram(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	asm := &Assembler{}
	obj, err := parse(t, asm,
		"; a test program",
		".equ COUNT 3",
		`.string __program_name "MYGAME"`,
		`.string __manufacturer_code "AB"`,
		"main:",
		"    LD B, COUNT        ; loop count",
		"loop: DEC B",
		"    JR NZ, loop",
		"    LD HL, __program_name",
		"    CALL done",
		"    JP main",
		"done:",
		"    RET",
	)
	require.NoError(err)

	assert.Equal([]byte("MYGAME\x00AB\x00"), obj.DataSlice(0, obj.DataSize()))
	assert.Equal([]byte{
		0x06, 0x03, // LD B,3
		0x05,       // DEC B
		0x20, 0xfd, // JR NZ,loop
		0x21, 0x50, 0x01, // LD HL,__program_name
		0xcd, 0x68, 0x01, // CALL done
		0xc3, 0x5a, 0x01, // JP main
		0xc9, // RET
	}, obj.CodeSlice(0, obj.CodeSize()))

	listing := asm.Listing()
	if assert.Len(listing, 7) {
		assert.Equal(6, listing[0].LineNo)
		assert.Equal(7, listing[1].LineNo)
		assert.Equal(13, listing[6].LineNo)
	}

	ln := &linker.Linker{}
	ln.Attach(obj)

	var out bytes.Buffer
	require.NoError(ln.Emit(&out))
	image := out.Bytes()
	assert.Len(image, cartridge.HeaderSize+10+15)
	assert.Equal([]byte{0x00, 0xc3, 0x5a, 0x01}, image[0x100:0x104])
	assert.Equal([]byte("MYGAME"), image[0x134:0x13a])
	assert.Equal([]byte("AB\x00\x00"), image[0x13f:0x143])
}

func TestParseExpressions(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	asm := &Assembler{}
	asm.Predefine("SPRITES", "40")

	obj, err := parse(t, asm,
		".equ COUNT 3",
		"LD A, $(COUNT * 2 + 1)",
		"LD A, 'x'",
		`LD A, '\n'`,
		"LD A, $(SPRITES * 4)",
		"LDH A, (rLY)",
		"LD HL, HEADER_SIZE",
		"LD B, $((1 + 2) * 3)",
		"ADD SP, $(-2)",
		"LD A, $(LINENO)",
		"LD A, (rKEY1)",
	)
	require.NoError(err)

	assert.Equal([]byte{
		0x3e, 0x07,
		0x3e, 'x',
		0x3e, '\n',
		0x3e, 160,
		0xf0, 0x44,
		0x21, 0x50, 0x01,
		0x06, 0x09,
		0xe8, 0xfe,
		0x3e, 0x0a,
		0xfa, 0x4d, 0xff,
	}, obj.CodeSlice(0, obj.CodeSize()))

	// Predefines persist across parses.
	obj, err = parse(t, asm, "LD A, SPRITES")
	require.NoError(err)
	assert.Equal([]byte{0x3e, 40}, obj.CodeSlice(0, 2))
}

func TestParseData(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	asm := &Assembler{}
	obj, err := parse(t, asm,
		".db bytes 1, 2, 0xff, -1, 'A'",
		".dw words 0x1234, -1 LINENO",
		`.string text "semi;colon \"quoted\"" ; comment`,
		"LD HL, words",
	)
	require.NoError(err)

	st := obj.Symbols()
	bytesVar, err := st.Variable("bytes")
	require.NoError(err)
	assert.Equal(object.VARIABLE_NUMBER, bytesVar.Kind)
	assert.Equal([]byte{1, 2, 0xff, 0xff, 'A'}, obj.DataSlice(bytesVar.Address, bytesVar.Size))

	words, err := st.Variable("words")
	require.NoError(err)
	assert.Equal(5, words.Address)
	assert.Equal([]byte{0x34, 0x12, 0xff, 0xff, 0x02, 0x00}, obj.DataSlice(words.Address, words.Size))

	text, err := st.String("text")
	require.NoError(err)
	assert.Equal([]byte("semi;colon \"quoted\"\x00"), obj.DataSlice(text.Address, text.Size))

	addr := cartridge.HeaderSize + 5
	assert.Equal([]byte{0x21, byte(addr), byte(addr >> 8)}, obj.CodeSlice(0, 3))
}

func TestParseErrors(t *testing.T) {
	table := [](struct {
		name   string
		lines  []string
		lineno int
		err    error
	}){
		{"equ-syntax", []string{"NOP", ".equ X"}, 2, ErrEquateSyntax},
		{"equ-duplicate", []string{".equ X 1", ".equ X 2"}, 2, ErrEquateDuplicate},
		{"string-syntax", []string{".string x noquote"}, 1, ErrStringSyntax},
		{"data-syntax", []string{".db x"}, 1, ErrDataSyntax},
		{"directive", []string{".org 0"}, 1, ErrDirective},
		{"no-macros", []string{"NOP", ".macro wait n"}, 2, ErrDirective},
		{"expr-open", []string{"LD A, $(1 + 2"}, 1, ErrExpressionOpen},
		{"label-string", []string{"NOP", `msg: .string msg "hi"`}, 2, ErrLabelDirective},
		{"label-equ", []string{"x: .equ X 1"}, 1, ErrLabelDirective},
		{"labels-data", []string{"a: b: .db x 1"}, 1, ErrLabelDirective},
	}

	for _, entry := range table {
		assert := assert.New(t)

		_, err := parse(t, &Assembler{}, entry.lines...)
		assert.ErrorIs(err, entry.err, entry.name)

		var syntaxErr *ErrSyntax
		if assert.ErrorAs(err, &syntaxErr, entry.name) {
			assert.Equal(entry.lineno, syntaxErr.LineNo, entry.name)
		}
	}
}

func TestParseErrorTypes(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	_, err := parse(t, asm, "NOP", "LD A, 300")
	var rangeErr *operand.ErrOperandRange
	assert.ErrorAs(err, &rangeErr)
	var syntaxErr *ErrSyntax
	if assert.ErrorAs(err, &syntaxErr) {
		assert.Equal(2, syntaxErr.LineNo)
		assert.Equal("LD A, 300", syntaxErr.Line)
	}

	_, err = parse(t, asm, "FROB A")
	var unknown *instruction.ErrInstructionUnrecognized
	assert.ErrorAs(err, &unknown)

	_, err = parse(t, asm, "main: NOP", "main: NOP")
	var duplicate object.ErrSymbolDuplicate
	assert.ErrorAs(err, &duplicate)

	_, err = parse(t, asm, `LD A, $("abc")`)
	var expr ErrParseExpression
	assert.ErrorAs(err, &expr)

	_, err = parse(t, asm, "LD A, $(1 +)")
	assert.Error(err)

	_, err = parse(t, asm, ".db x 256")
	assert.ErrorAs(err, &rangeErr)

	_, err = parse(t, asm, ".dw x 0xZZ")
	var parseErr operand.ErrParseValue
	assert.ErrorAs(err, &parseErr)

	// Unresolved references are reported at their line.
	_, err = parse(t, asm, "main:", "  NOP", "  JP nowhere ; far", "  RET")
	var undefined object.ErrSymbolUndefined
	assert.ErrorAs(err, &undefined)
	if assert.ErrorAs(err, &syntaxErr) {
		assert.Equal(3, syntaxErr.LineNo)
		assert.Equal("JP nowhere", syntaxErr.Line)
	}
}

func TestStripComment(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("NOP ", stripComment("NOP ; comment"))
	assert.Equal(`.string x "a;b" `, stripComment(`.string x "a;b" ; c`))
	assert.Equal(`.string x "a\";b"`, stripComment(`.string x "a\";b"`))
	assert.Equal("", stripComment("; all comment"))
	assert.Equal("LD A, ';' ", stripComment("LD A, ';' ; semicolon"))
	assert.Equal(`LD A, '\'' `, stripComment(`LD A, '\'' ; quote`))
	assert.Equal(`.string x "it's;" `, stripComment(`.string x "it's;" ; c`))
}

func TestParseCharacterLiteral(t *testing.T) {
	assert := assert.New(t)

	obj, err := parse(t, &Assembler{}, "LD A, ';' ; semicolon", "CP ';'")
	require.NoError(t, err)
	assert.Equal([]byte{0x3e, 0x3b, 0xfe, 0x3b}, obj.CodeSlice(0, 4))
}

func TestParseNumericName(t *testing.T) {
	assert := assert.New(t)

	_, err := parse(t, &Assembler{}, "ch: NOP")
	var name ErrSymbolName
	if assert.ErrorAs(err, &name) {
		assert.Contains(name.Error(), "reads as a number")
	}

	_, err = parse(t, &Assembler{}, "1abel: NOP")
	if assert.ErrorAs(err, &name) {
		assert.Contains(name.Error(), "not a valid symbol name")
	}
}
