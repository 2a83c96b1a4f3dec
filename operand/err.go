package operand

import (
	"errors"

	"github.com/ezrec/gbasm/translate"
)

var f = translate.From

var (
	ErrOperandShape = errors.New(f("operand shape unknown"))
)

// ErrParseValue is returned when a literal does not follow the numeric
// literal grammar.
type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrOperandRange is returned when a literal parses but does not fit the
// operand it was written for.
type ErrOperandRange struct {
	Token string
	Min   int
	Max   int
}

func (err *ErrOperandRange) Error() string {
	return f("'%v' out of range [%v, %v]", err.Token, err.Min, err.Max)
}
