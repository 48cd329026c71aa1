package tapeio

import (
	"github.com/ezrec/bfi/translate"
)

var f = translate.From

// ErrFormat is an unknown output format name.
type ErrFormat string

func (err ErrFormat) Error() string {
	return f("'%v' is not an output format (bytes, runes, numbers)", string(err))
}
