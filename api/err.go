package api

import (
	"errors"
	"strconv"

	"github.com/ezrec/bfi/translate"
)

var f = translate.From

var (
	ErrRequestInvalid   = errors.New(f("request invalid"))
	ErrRequestTrailing  = errors.New(f("unexpected data after request"))
	ErrInputInvalid     = errors.New(f("input must be a string or an array of integers"))
	ErrInputNotInteger  = errors.New(f("input value is not an integer"))
	ErrExpressionResult = errors.New(f("expression must yield an integer or a list of integers"))
)

// ErrInputValue locates a rejected element of an input array.
type ErrInputValue struct {
	Index int
	Value string
	Err   error
}

func (err *ErrInputValue) Error() string {
	return f("input[%v] '%v' %v", strconv.Itoa(err.Index), err.Value, err.Err)
}

func (err *ErrInputValue) Unwrap() error {
	return err.Err
}
