// Package operand implements the operand shapes of the LR35902 (Game Boy)
// instruction set.
//
// Every shape knows how many payload bytes it adds to an instruction,
// whether a token written by the programmer has that shape, and how to
// encode the token into payload bytes. Shapes fully implied by the opcode,
// such as a register selected by the opcode itself, add no bytes.
package operand

import (
	"regexp"
	"strings"
)

// Kind is the operand variant tag.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_CONSTANT         = Kind(0) // constant
	KIND_REGISTER         = Kind(1) // register
	KIND_REGISTER_PAIR    = Kind(2) // register pair
	KIND_INDIRECT         = Kind(3) // indirect register
	KIND_INDIRECT_ADDRESS = Kind(4) // indirect address
	KIND_IMMEDIATE        = Kind(5) // immediate
	KIND_RELATIVE         = Kind(6) // relative
	KIND_CONDITION        = Kind(7) // condition
	KIND_REFERENCE        = Kind(8) // reference
	KIND_DISPLACEMENT     = Kind(9) // displacement
)

// Specificity ranks how narrow a shape is. Shapes that accept a single
// spelling rank highest; shapes that accept any symbol rank lowest.
func (k Kind) Specificity() int {
	switch k {
	case KIND_CONSTANT, KIND_REGISTER, KIND_REGISTER_PAIR, KIND_INDIRECT, KIND_CONDITION:
		return 4
	case KIND_DISPLACEMENT:
		return 3
	case KIND_INDIRECT_ADDRESS:
		return 2
	case KIND_IMMEDIATE, KIND_RELATIVE:
		return 1
	}
	return 0
}

// Operand is a single operand shape of an instruction template.
type Operand interface {
	// Kind returns the variant tag.
	Kind() Kind
	// Size returns the number of payload bytes, which depends only on the shape.
	Size() int
	// Match reports whether token has this shape. It never panics.
	Match(token string) bool
	// Encode returns the payload for a token that matched, or nil when the
	// operand is implied by the opcode.
	Encode(token string) []byte
	// Format renders a payload of Size() bytes back into a token.
	Format(payload []byte) string
}

// Checker is implemented by numeric shapes to explain why a token failed
// to match: ErrParseValue or *ErrOperandRange.
type Checker interface {
	Check(token string) error
}

// Reloc is how a symbolic token is resolved once its address is known.
type Reloc int

const (
	RELOC_NONE     = Reloc(0)
	RELOC_ABSOLUTE = Reloc(1) // 16-bit little-endian absolute address
	RELOC_RELATIVE = Reloc(2) // signed 8-bit offset from the next instruction
)

// Relocatable is implemented by shapes that accept symbol names.
type Relocatable interface {
	// Reloc returns RELOC_NONE when token is not symbolic.
	Reloc(token string) Reloc
	// Symbol returns the symbol name written in token.
	Symbol(token string) string
	// LabelOnly is true when the symbol must be a label.
	LabelOnly() bool
}

var reIdentifier = regexp.MustCompile(`^[A-Za-z_.][A-Za-z0-9_.]*$`)

// reserved are the names that can never be symbols.
var reserved = map[string]bool{
	"A": true, "B": true, "C": true, "D": true, "E": true, "H": true, "L": true,
	"AF": true, "BC": true, "DE": true, "HL": true, "SP": true,
	"HLI": true, "HLD": true,
	"NZ": true, "Z": true, "NC": true,
}

// IsSymbol reports whether token names a symbol rather than a number or a
// register.
func IsSymbol(token string) bool {
	if !reIdentifier.MatchString(token) {
		return false
	}
	if reserved[strings.ToUpper(token)] {
		return false
	}
	if _, err := ParseValue(token); err == nil {
		return false
	}
	return true
}

// normalize removes blanks so "( HL + )" and "(HL+)" compare equal.
func normalize(token string) string {
	return strings.Join(strings.Fields(token), "")
}

// unwrap strips one level of parentheses.
func unwrap(token string) (inner string, ok bool) {
	token = strings.TrimSpace(token)
	if len(token) < 2 || token[0] != '(' || token[len(token)-1] != ')' {
		return
	}
	return strings.TrimSpace(token[1 : len(token)-1]), true
}

func littleEndian(value int, size int) []byte {
	out := make([]byte, size)
	for n := range size {
		out[n] = byte(value >> (8 * n))
	}
	return out
}
