package operand

import (
	"fmt"
	"maps"
	"slices"
)

// shapes maps the operand spelling used by instruction definitions to its
// operand. Conditions are prefixed with '?' to tell the carry condition
// apart from register C.
var shapes = map[string]Operand{}

func init() {
	for _, name := range []string{"A", "B", "C", "D", "E", "H", "L"} {
		shapes[name] = &Register{Name: name}
	}
	for _, name := range []string{"AF", "BC", "DE", "HL", "SP"} {
		shapes[name] = &RegisterPair{Name: name}
	}
	for _, name := range []string{"NZ", "Z", "NC", "C"} {
		shapes["?"+name] = &Condition{Name: name}
	}

	shapes["(BC)"] = &Indirect{Name: "(BC)"}
	shapes["(DE)"] = &Indirect{Name: "(DE)"}
	shapes["(HL)"] = &Indirect{Name: "(HL)"}
	shapes["(HL+)"] = &Indirect{Name: "(HL+)", Aliases: []string{"(HLI)"}}
	shapes["(HL-)"] = &Indirect{Name: "(HL-)", Aliases: []string{"(HLD)"}}
	shapes["(C)"] = &Indirect{Name: "(C)", Aliases: []string{"(0xFF00+C)", "(FF00h+C)"}}

	shapes["d8"] = &Immediate{Bits: 8}
	shapes["d16"] = &Immediate{Bits: 16, Symbols: true}
	shapes["s8"] = &Immediate{Bits: 8, Signed: true}
	shapes["a16"] = &Reference{}
	shapes["r8"] = &Relative{}
	shapes["(a8)"] = &IndirectAddress{Bits: 8}
	shapes["(a16)"] = &IndirectAddress{Bits: 16}
	shapes["SP+r8"] = &Displacement{Base: "SP"}

	for bit := range 8 {
		text := fmt.Sprintf("%d", bit)
		shapes[text] = &Constant{Value: bit, Text: text}
	}
	for vector := 0; vector < 0x40; vector += 8 {
		text := fmt.Sprintf("%02XH", vector)
		shapes[text] = &Constant{Value: vector, Text: text}
	}
}

// Shape returns the operand for a definition spelling.
func Shape(name string) (op Operand, err error) {
	op, ok := shapes[name]
	if !ok {
		err = fmt.Errorf("%w: %v", ErrOperandShape, name)
	}
	return
}

// Shapes returns the sorted list of known definition spellings.
func Shapes() []string {
	return slices.Sorted(maps.Keys(shapes))
}
