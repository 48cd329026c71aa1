package memory

import (
	"errors"

	"github.com/ezrec/bfi/translate"
)

var f = translate.From

var (
	ErrBitsInvalid = errors.New(f("cell width invalid"))
)

// ErrBits is returned for an unsupported cell width.
type ErrBits int

func (err ErrBits) Error() string {
	return f("cell width %d not in %d..%d bits", int(err), MIN_BITS, MAX_BITS)
}

func (err ErrBits) Unwrap() error {
	return ErrBitsInvalid
}
