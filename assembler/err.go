package assembler

import (
	"errors"

	"github.com/ezrec/gbasm/operand"
	"github.com/ezrec/gbasm/translate"
)

var f = translate.From

var (
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrStringSyntax    = errors.New(f(".string syntax"))
	ErrDataSyntax      = errors.New(f("data directive syntax"))
	ErrDirective       = errors.New(f("directive unknown"))
	ErrExpressionOpen  = errors.New(f("$( without )"))
	ErrLabelDirective  = errors.New(f("label before a directive; directives name their own symbol"))
)

// ErrSymbolName is returned when a label or variable name is not an
// identifier, or names a register.
type ErrSymbolName string

func (err ErrSymbolName) Error() string {
	if _, perr := operand.ParseValue(string(err)); perr == nil {
		return f("'%v' reads as a number, not a symbol name", string(err))
	}
	return f("'%v' is not a valid symbol name", string(err))
}

// ErrParseExpression is returned when a $(...) expression does not
// evaluate to an integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrFixup is returned when a symbolic operand cannot be resolved.
type ErrFixup struct {
	LineNo int
	Symbol string
	Err    error
}

func (err *ErrFixup) Error() string {
	return f("line %d reference to %v: %v", err.LineNo, err.Symbol, err.Err)
}

func (err *ErrFixup) Unwrap() error {
	return err.Err
}

// ErrSyntax locates an error in the source text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
