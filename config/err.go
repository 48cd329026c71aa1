package config

import (
	"errors"

	"github.com/ezrec/bfi/translate"
)

var f = translate.From

var (
	ErrConfigInvalid = errors.New(f("config invalid"))
)
