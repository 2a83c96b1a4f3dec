package instruction

import (
	"fmt"
	"strings"

	"github.com/ezrec/gbasm/operand"
)

// Definition is one row of the opcode table.
type Definition struct {
	Code           uint16 // Opcode; values above 0xFF are two bytes, MSB first.
	Mnemonic       string
	Operands       string // Comma separated operand shapes.
	Cycles         int    // Clock cycles; for conditional branches, when taken.
	CyclesNotTaken int    // Clock cycles of a conditional branch not taken.
	Flags          string // ZNHC effects, e.g. "Z0H-".
}

// Template is an immutable instruction encoding.
type Template struct {
	Code           uint16
	Mnemonic       string
	Name           string
	Size           int
	Cycles         int
	CyclesNotTaken int
	Flags          [4]Effect
	Operands       []operand.Operand

	shapes []string
}

// NewTemplate builds a template from its definition.
func NewTemplate(def Definition) (tmpl *Template, err error) {
	name, ok := mnemonicNames[def.Mnemonic]
	if !ok {
		err = fmt.Errorf("%w: %v", ErrMnemonicUnnamed, def.Mnemonic)
		return
	}

	flags, err := parseEffects(def.Flags)
	if err != nil {
		return
	}

	tmpl = &Template{
		Code:           def.Code,
		Mnemonic:       def.Mnemonic,
		Name:           name,
		Cycles:         def.Cycles,
		CyclesNotTaken: def.CyclesNotTaken,
		Flags:          flags,
	}

	if tmpl.CyclesNotTaken == 0 {
		tmpl.CyclesNotTaken = tmpl.Cycles
	}

	tmpl.Size = len(tmpl.Opcode())

	if len(def.Operands) != 0 {
		tmpl.shapes = strings.Split(def.Operands, ",")
	}

	for _, shape := range tmpl.shapes {
		var op operand.Operand
		op, err = operand.Shape(shape)
		if err != nil {
			tmpl = nil
			return
		}
		tmpl.Operands = append(tmpl.Operands, op)
		tmpl.Size += op.Size()
	}

	return
}

// Opcode returns the opcode bytes.
func (tmpl *Template) Opcode() []byte {
	if tmpl.Code <= 0xff {
		return []byte{byte(tmpl.Code)}
	}
	return []byte{byte(tmpl.Code >> 8), byte(tmpl.Code)}
}

// Flag returns the effect on a flag.
func (tmpl *Template) Flag(flag Flag) Effect {
	return tmpl.Flags[flag]
}

// Conditional is true for branches with a taken and a not taken timing.
func (tmpl *Template) Conditional() bool {
	return tmpl.Cycles != tmpl.CyclesNotTaken
}

// Match reports whether every operand token has the shape of the template.
func (tmpl *Template) Match(mnemonic string, operands []string) bool {
	if !strings.EqualFold(tmpl.Mnemonic, mnemonic) {
		return false
	}

	if len(tmpl.Operands) != len(operands) {
		return false
	}

	for n, op := range tmpl.Operands {
		if !op.Match(operands[n]) {
			return false
		}
	}

	return true
}

// Encode emits the opcode followed by operand payloads, in declaration
// order. Only valid for operands that matched.
func (tmpl *Template) Encode(operands []string) (code []byte) {
	code = make([]byte, 0, tmpl.Size)
	code = append(code, tmpl.Opcode()...)

	for n, op := range tmpl.Operands {
		payload := op.Encode(operands[n])
		if payload != nil {
			code = append(code, payload...)
		}
	}

	return
}

// Specificity sums the specificity of all operand shapes.
func (tmpl *Template) Specificity() (total int) {
	for _, op := range tmpl.Operands {
		total += op.Kind().Specificity()
	}
	return
}

// Samples returns a canonical operand token for every operand shape.
func (tmpl *Template) Samples() (samples []string) {
	for _, op := range tmpl.Operands {
		samples = append(samples, op.Format(make([]byte, op.Size())))
	}
	return
}

// String returns the definition form, e.g. "LD A,d8".
func (tmpl *Template) String() string {
	if len(tmpl.shapes) == 0 {
		return tmpl.Mnemonic
	}
	return tmpl.Mnemonic + " " + strings.ReplaceAll(strings.Join(tmpl.shapes, ","), "?", "")
}

// Describe returns a one line summary with timing and flags.
func (tmpl *Template) Describe() string {
	cycles := fmt.Sprintf("%d", tmpl.Cycles)
	if tmpl.Conditional() {
		cycles = fmt.Sprintf("%d/%d", tmpl.Cycles, tmpl.CyclesNotTaken)
	}
	return fmt.Sprintf("%04X %-16v %-28v %d bytes, %v cycles, %v", tmpl.Code, tmpl.String(), tmpl.Name, tmpl.Size, cycles, formatEffects(tmpl.Flags))
}
