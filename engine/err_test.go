package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/ezrec/bfi/translate"
)

func TestErrBracketOffset(t *testing.T) {
	assert := assert.New(t)

	translate.SetLanguage(language.AmericanEnglish)

	err := &ErrBracket{Offset: 1234567, Err: ErrBracketUnclosed}
	assert.Equal("offset 1234567 "+ErrBracketUnclosed.Error(), err.Error())
	assert.ErrorIs(err, ErrBracketUnmatched)
}
