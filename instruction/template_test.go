package instruction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/gbasm/operand"
)

func TestNewTemplate(t *testing.T) {
	assert := assert.New(t)

	tmpl, err := NewTemplate(Definition{0x04, "INC", "B", 4, 0, "Z0H-"})
	require.NoError(t, err)
	assert.Equal("Increase", tmpl.Name)
	assert.Equal(1, tmpl.Size)
	assert.Equal(4, tmpl.Cycles)
	assert.Equal(4, tmpl.CyclesNotTaken)
	assert.False(tmpl.Conditional())
	assert.Equal(EFFECT_RESULT, tmpl.Flag(FLAG_ZERO))
	assert.Equal(EFFECT_RESET, tmpl.Flag(FLAG_NEGATIVE))
	assert.Equal(EFFECT_RESULT, tmpl.Flag(FLAG_HALF_CARRY))
	assert.Equal(EFFECT_UNAFFECTED, tmpl.Flag(FLAG_CARRY))
	assert.Equal("INC B", tmpl.String())

	tmpl, err = NewTemplate(Definition{0xc2, "JP", "?NZ,a16", 16, 12, "----"})
	require.NoError(t, err)
	assert.Equal(3, tmpl.Size)
	assert.True(tmpl.Conditional())
	assert.Equal("JP NZ,a16", tmpl.String())
	assert.Contains(tmpl.Describe(), "16/12")

	tmpl, err = NewTemplate(Definition{0xcb37, "SWAP", "A", 8, 0, "Z000"})
	require.NoError(t, err)
	assert.Equal([]byte{0xcb, 0x37}, tmpl.Opcode())
	assert.Equal(2, tmpl.Size)

	tmpl, err = NewTemplate(Definition{0x37, "SCF", "", 4, 0, "-001"})
	require.NoError(t, err)
	assert.Equal(EFFECT_SET, tmpl.Flag(FLAG_CARRY))
	assert.Empty(tmpl.Operands)
	assert.Contains(tmpl.Describe(), "-001")
}

func TestNewTemplateErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := NewTemplate(Definition{0x00, "MOV", "", 4, 0, "----"})
	assert.ErrorIs(err, ErrMnemonicUnnamed)

	_, err = NewTemplate(Definition{0x00, "NOP", "", 4, 0, "--"})
	assert.ErrorIs(err, ErrFlagSyntax)

	_, err = NewTemplate(Definition{0x00, "NOP", "", 4, 0, "N---"})
	assert.ErrorIs(err, ErrFlagSyntax)

	_, err = NewTemplate(Definition{0x00, "LD", "A,(IX+d)", 4, 0, "----"})
	assert.ErrorIs(err, operand.ErrOperandShape)
}

func TestFlagStrings(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("H", FLAG_HALF_CARRY.String())
	assert.Equal("Flag(9)", Flag(9).String())
	assert.Equal("-", EFFECT_UNAFFECTED.String())
	assert.Equal("*", EFFECT_RESULT.String())
	assert.Equal("Z1HC", formatEffects([4]Effect{EFFECT_RESULT, EFFECT_SET, EFFECT_RESULT, EFFECT_RESULT}))

	name, ok := Name("DAA")
	assert.True(ok)
	assert.Equal("Decimal adjust A", name)
}
