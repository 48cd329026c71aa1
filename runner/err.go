package runner

import (
	"errors"
	"strconv"

	"github.com/ezrec/bfi/translate"
)

var f = translate.From

var (
	ErrStepLimit = errors.New(f("step limit exceeded"))
)

// ErrRuntime indicates the program offset of a runtime error.
type ErrRuntime struct {
	Offset int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("offset %v %v", strconv.Itoa(err.Offset), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
