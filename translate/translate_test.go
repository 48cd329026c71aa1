package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage(language.AmericanEnglish)

	assert.Equal("line 3 bad", From("line %d %v", 3, "bad"))
	assert.Equal("1,234,567", Count(1234567))
	assert.Equal("12", Count(12))
}
