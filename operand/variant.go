package operand

import (
	"fmt"
	"strings"
)

// Constant is a fixed value selected by the opcode, such as a BIT index or
// an RST vector.
type Constant struct {
	Value int
	Text  string // Canonical spelling.
}

var _ Operand = (*Constant)(nil)

func (op *Constant) Kind() Kind { return KIND_CONSTANT }
func (op *Constant) Size() int  { return 0 }

func (op *Constant) Match(token string) bool {
	value, err := ParseValue(strings.TrimSpace(token))
	return err == nil && value == op.Value
}

func (op *Constant) Encode(token string) []byte { return nil }

func (op *Constant) Format(payload []byte) string { return op.Text }

// Register is an 8-bit register selected by the opcode.
type Register struct {
	Name string
}

var _ Operand = (*Register)(nil)

func (op *Register) Kind() Kind { return KIND_REGISTER }
func (op *Register) Size() int  { return 0 }

func (op *Register) Match(token string) bool {
	return strings.EqualFold(normalize(token), op.Name)
}

func (op *Register) Encode(token string) []byte { return nil }

func (op *Register) Format(payload []byte) string { return op.Name }

// RegisterPair is a 16-bit register pair selected by the opcode.
type RegisterPair struct {
	Name string
}

var _ Operand = (*RegisterPair)(nil)

func (op *RegisterPair) Kind() Kind { return KIND_REGISTER_PAIR }
func (op *RegisterPair) Size() int  { return 0 }

func (op *RegisterPair) Match(token string) bool {
	return strings.EqualFold(normalize(token), op.Name)
}

func (op *RegisterPair) Encode(token string) []byte { return nil }

func (op *RegisterPair) Format(payload []byte) string { return op.Name }

// Indirect is memory addressed by a register, e.g. (HL) or (HL+).
type Indirect struct {
	Name    string   // Canonical spelling, with parentheses.
	Aliases []string // Alternate spellings.
}

var _ Operand = (*Indirect)(nil)

func (op *Indirect) Kind() Kind { return KIND_INDIRECT }
func (op *Indirect) Size() int  { return 0 }

func (op *Indirect) Match(token string) bool {
	token = normalize(token)
	if strings.EqualFold(token, op.Name) {
		return true
	}
	for _, alias := range op.Aliases {
		if strings.EqualFold(token, alias) {
			return true
		}
	}
	return false
}

func (op *Indirect) Encode(token string) []byte { return nil }

func (op *Indirect) Format(payload []byte) string { return op.Name }

// Condition is a branch condition flag test.
type Condition struct {
	Name string
}

var _ Operand = (*Condition)(nil)

func (op *Condition) Kind() Kind { return KIND_CONDITION }
func (op *Condition) Size() int  { return 0 }

func (op *Condition) Match(token string) bool {
	return strings.EqualFold(normalize(token), op.Name)
}

func (op *Condition) Encode(token string) []byte { return nil }

func (op *Condition) Format(payload []byte) string { return op.Name }

// Immediate is an 8 or 16-bit literal value.
//
// Unsigned immediates also accept negative values down to the signed
// minimum, which are stored in two's complement. Symbols are accepted
// when Symbols is set; their address is filled in after assembly.
type Immediate struct {
	Bits    int
	Signed  bool
	Symbols bool
}

var _ Operand = (*Immediate)(nil)
var _ Checker = (*Immediate)(nil)
var _ Relocatable = (*Immediate)(nil)

func (op *Immediate) Kind() Kind { return KIND_IMMEDIATE }
func (op *Immediate) Size() int  { return op.Bits / 8 }

func (op *Immediate) limits() (min, max int) {
	min = -(1 << (op.Bits - 1))
	if op.Signed {
		max = (1 << (op.Bits - 1)) - 1
	} else {
		max = (1 << op.Bits) - 1
	}
	return
}

func (op *Immediate) Check(token string) (err error) {
	min, max := op.limits()
	_, err = checkRange(strings.TrimSpace(token), min, max)
	return
}

func (op *Immediate) Match(token string) bool {
	if op.Reloc(token) != RELOC_NONE {
		return true
	}
	return op.Check(token) == nil
}

func (op *Immediate) Encode(token string) []byte {
	if op.Reloc(token) != RELOC_NONE {
		return make([]byte, op.Size())
	}
	value, _ := ParseValue(strings.TrimSpace(token))
	return littleEndian(value, op.Size())
}

func (op *Immediate) Format(payload []byte) string {
	if op.Signed {
		return fmt.Sprintf("%d", int8(payload[0]))
	}
	if op.Bits == 8 {
		return fmt.Sprintf("0%02Xh", payload[0])
	}
	return fmt.Sprintf("0%04Xh", uint16(payload[0])|uint16(payload[1])<<8)
}

func (op *Immediate) Reloc(token string) Reloc {
	if op.Symbols && op.Bits == 16 && IsSymbol(strings.TrimSpace(token)) {
		return RELOC_ABSOLUTE
	}
	return RELOC_NONE
}

func (op *Immediate) Symbol(token string) string { return strings.TrimSpace(token) }

func (op *Immediate) LabelOnly() bool { return false }

// Reference is an absolute jump or call target: an address or a label.
type Reference struct{}

var _ Operand = (*Reference)(nil)
var _ Checker = (*Reference)(nil)
var _ Relocatable = (*Reference)(nil)

func (op *Reference) Kind() Kind { return KIND_REFERENCE }
func (op *Reference) Size() int  { return 2 }

func (op *Reference) Check(token string) (err error) {
	_, err = checkRange(strings.TrimSpace(token), 0, 0xffff)
	return
}

func (op *Reference) Match(token string) bool {
	return op.Reloc(token) != RELOC_NONE || op.Check(token) == nil
}

func (op *Reference) Encode(token string) []byte {
	if op.Reloc(token) != RELOC_NONE {
		return make([]byte, 2)
	}
	value, _ := ParseValue(strings.TrimSpace(token))
	return littleEndian(value, 2)
}

func (op *Reference) Format(payload []byte) string {
	return fmt.Sprintf("0%04Xh", uint16(payload[0])|uint16(payload[1])<<8)
}

func (op *Reference) Reloc(token string) Reloc {
	if IsSymbol(strings.TrimSpace(token)) {
		return RELOC_ABSOLUTE
	}
	return RELOC_NONE
}

func (op *Reference) Symbol(token string) string { return strings.TrimSpace(token) }

func (op *Reference) LabelOnly() bool { return true }

// Relative is a signed 8-bit displacement from the end of the instruction.
type Relative struct{}

var _ Operand = (*Relative)(nil)
var _ Checker = (*Relative)(nil)
var _ Relocatable = (*Relative)(nil)

func (op *Relative) Kind() Kind { return KIND_RELATIVE }
func (op *Relative) Size() int  { return 1 }

func (op *Relative) Check(token string) (err error) {
	_, err = checkRange(strings.TrimSpace(token), -128, 127)
	return
}

func (op *Relative) Match(token string) bool {
	return op.Reloc(token) != RELOC_NONE || op.Check(token) == nil
}

func (op *Relative) Encode(token string) []byte {
	if op.Reloc(token) != RELOC_NONE {
		return []byte{0}
	}
	value, _ := ParseValue(strings.TrimSpace(token))
	return []byte{byte(int8(value))}
}

func (op *Relative) Format(payload []byte) string {
	return fmt.Sprintf("%d", int8(payload[0]))
}

func (op *Relative) Reloc(token string) Reloc {
	if IsSymbol(strings.TrimSpace(token)) {
		return RELOC_RELATIVE
	}
	return RELOC_NONE
}

func (op *Relative) Symbol(token string) string { return strings.TrimSpace(token) }

func (op *Relative) LabelOnly() bool { return true }

// IndirectAddress is memory addressed by an immediate, e.g. (a16).
//
// The 8-bit form addresses the high page 0xFF00-0xFFFF and accepts either
// the page offset or the full address. The 16-bit form accepts symbols.
type IndirectAddress struct {
	Bits int
}

var _ Operand = (*IndirectAddress)(nil)
var _ Checker = (*IndirectAddress)(nil)
var _ Relocatable = (*IndirectAddress)(nil)

func (op *IndirectAddress) Kind() Kind { return KIND_INDIRECT_ADDRESS }
func (op *IndirectAddress) Size() int  { return op.Bits / 8 }

func (op *IndirectAddress) value(token string) (value int, err error) {
	inner, ok := unwrap(token)
	if !ok {
		err = ErrParseValue(token)
		return
	}
	if op.Bits == 16 {
		return checkRange(inner, 0, 0xffff)
	}

	value, err = checkRange(inner, 0, 0xffff)
	if err != nil {
		return
	}
	switch {
	case value <= 0xff:
	case value >= 0xff00:
		value &= 0xff
	default:
		err = &ErrOperandRange{Token: token, Min: 0xff00, Max: 0xffff}
	}
	return
}

func (op *IndirectAddress) Check(token string) (err error) {
	_, err = op.value(token)
	return
}

func (op *IndirectAddress) Match(token string) bool {
	return op.Reloc(token) != RELOC_NONE || op.Check(token) == nil
}

func (op *IndirectAddress) Encode(token string) []byte {
	if op.Reloc(token) != RELOC_NONE {
		return make([]byte, op.Size())
	}
	value, _ := op.value(token)
	return littleEndian(value, op.Size())
}

func (op *IndirectAddress) Format(payload []byte) string {
	if op.Bits == 8 {
		return fmt.Sprintf("(0FF%02Xh)", payload[0])
	}
	return fmt.Sprintf("(0%04Xh)", uint16(payload[0])|uint16(payload[1])<<8)
}

func (op *IndirectAddress) Reloc(token string) Reloc {
	inner, ok := unwrap(token)
	if ok && op.Bits == 16 && IsSymbol(inner) {
		return RELOC_ABSOLUTE
	}
	return RELOC_NONE
}

func (op *IndirectAddress) Symbol(token string) string {
	inner, _ := unwrap(token)
	return inner
}

func (op *IndirectAddress) LabelOnly() bool { return false }

// Displacement is a register plus a signed 8-bit offset, e.g. SP+r8.
type Displacement struct {
	Base string
}

var _ Operand = (*Displacement)(nil)
var _ Checker = (*Displacement)(nil)

func (op *Displacement) Kind() Kind { return KIND_DISPLACEMENT }
func (op *Displacement) Size() int  { return 1 }

func (op *Displacement) value(token string) (value int, err error) {
	token = normalize(token)
	if len(token) <= len(op.Base) || !strings.EqualFold(token[:len(op.Base)], op.Base) {
		err = ErrParseValue(token)
		return
	}
	offset := token[len(op.Base):]
	switch offset[0] {
	case '+':
		offset = offset[1:]
	case '-':
	default:
		err = ErrParseValue(token)
		return
	}
	return checkRange(offset, -128, 127)
}

func (op *Displacement) Check(token string) (err error) {
	_, err = op.value(token)
	return
}

func (op *Displacement) Match(token string) bool {
	return op.Check(token) == nil
}

func (op *Displacement) Encode(token string) []byte {
	value, _ := op.value(token)
	return []byte{byte(int8(value))}
}

func (op *Displacement) Format(payload []byte) string {
	return fmt.Sprintf("%v%+d", op.Base, int8(payload[0]))
}
