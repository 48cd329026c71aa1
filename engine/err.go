package engine

import (
	"errors"
	"strconv"

	"github.com/ezrec/bfi/translate"
)

var f = translate.From

var (
	ErrBracketUnmatched = errors.New(f("unmatched loop bracket"))
	ErrBracketUnopened  = errors.New(f("']' without '['"))
	ErrBracketUnclosed  = errors.New(f("'[' without ']'"))
	ErrHalted           = errors.New(f("halted"))
	ErrStatusUnknown    = errors.New(f("status unknown"))
)

// ErrBracket locates a loop bracket without a partner.
type ErrBracket struct {
	Offset int
	Err    error
}

func (err *ErrBracket) Error() string {
	return f("offset %v %v", strconv.Itoa(err.Offset), err.Err)
}

// Unwrap matches both ErrBracketUnmatched and the specific cause.
func (err *ErrBracket) Unwrap() []error {
	return []error{ErrBracketUnmatched, err.Err}
}
