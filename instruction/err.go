package instruction

import (
	"errors"
	"strings"

	"github.com/ezrec/gbasm/translate"
)

var f = translate.From

var (
	ErrFlagSyntax       = errors.New(f("flag effect syntax"))
	ErrMnemonicUnnamed  = errors.New(f("mnemonic has no name"))
	ErrOpcodeUnknown    = errors.New(f("opcode unknown"))
	ErrOpcodeTruncated  = errors.New(f("opcode truncated"))
	ErrInstructionEmpty = errors.New(f("mnemonic missing"))
)

// ErrInstructionUnrecognized is returned when no template matches.
type ErrInstructionUnrecognized struct {
	Mnemonic string
	Operands []string
}

func (err *ErrInstructionUnrecognized) Error() string {
	return f("unrecognized instruction '%v %v'", err.Mnemonic, strings.Join(err.Operands, ","))
}

// ErrInstructionAmbiguous is returned when the tie-break cannot choose
// between matching templates.
type ErrInstructionAmbiguous struct {
	Mnemonic   string
	Operands   []string
	Candidates []*Template
}

func (err *ErrInstructionAmbiguous) Error() string {
	names := make([]string, len(err.Candidates))
	for n, tmpl := range err.Candidates {
		names[n] = tmpl.String()
	}
	return f("ambiguous instruction '%v %v' matches %v", err.Mnemonic, strings.Join(err.Operands, ","), strings.Join(names, "; "))
}

// ErrInstructionRange is returned when a template would have matched but
// for an operand value out of range.
type ErrInstructionRange struct {
	Mnemonic string
	Err      error
}

func (err *ErrInstructionRange) Error() string {
	return f("%v: %v", err.Mnemonic, err.Err)
}

func (err *ErrInstructionRange) Unwrap() error {
	return err.Err
}
