package linker

import (
	"errors"

	"github.com/ezrec/gbasm/translate"
)

var f = translate.From

var (
	ErrLinkerState = errors.New(f("linker not ready to emit"))
)

// ErrReserved is returned when a reserved linker symbol is missing or of
// the wrong kind.
type ErrReserved struct {
	Name string
	Err  error
}

func (err *ErrReserved) Error() string {
	return f("reserved symbol %v: %v", err.Name, err.Err)
}

func (err *ErrReserved) Unwrap() error {
	return err.Err
}

// ErrEmit is returned when writing the image fails. The destination is
// invalid.
type ErrEmit struct {
	Err error
}

func (err *ErrEmit) Error() string {
	return f("emit: %v", err.Err)
}

func (err *ErrEmit) Unwrap() error {
	return err.Err
}

// ErrEntryRange is returned when the entry address is beyond the fixed ROM
// bank.
type ErrEntryRange int

func (err ErrEntryRange) Error() string {
	return f("entry address %#x out of range", int(err))
}

// ErrImageSize is returned when the image exceeds the largest cartridge ROM.
type ErrImageSize int

func (err ErrImageSize) Error() string {
	return f("image size %v too large", int(err))
}
