package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeRequest(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		body   string
		code   string
		values []int64
		bits   int
		signed bool
	}){
		{"string input", `{"code": ",.", "input": "Hi", "bits": 16, "signed": true}`, ",.", []int64{'H', 'i'}, 16, true},
		{"array input", `{"code": "+", "input": [1, -2, 300], "bits": 8, "signed": false}`, "+", []int64{1, -2, 300}, 8, false},
		{"empty string", `{"code": "", "input": ""}`, "", []int64{}, 8, false},
		{"null input", `{"code": ".", "input": null}`, ".", nil, 8, false},
		{"missing input", `{"code": "."}`, ".", nil, 8, false},
		{"unicode", `{"input": "é€"}`, "", []int64{0xe9, 0x20ac}, 8, false},
		{"exponent integer", `{"input": [1e3]}`, "", nil, 8, false},
	}

	for _, entry := range table {
		req, err := DecodeRequest(strings.NewReader(entry.body))
		if !assert.NoError(err, entry.name) {
			continue
		}
		assert.Equal(entry.code, req.Code, entry.name)
		assert.Equal(entry.bits, req.BitsOr(8), entry.name)
		assert.Equal(entry.signed, req.SignedOr(false), entry.name)

		values, err := req.Values()
		if entry.name == "exponent integer" {
			assert.ErrorIs(err, ErrInputNotInteger, entry.name)
			continue
		}
		assert.NoError(err, entry.name)
		assert.Equal(entry.values, values, entry.name)
	}
}

func TestDecodeRequestInvalid(t *testing.T) {
	assert := assert.New(t)

	for _, body := range []string{
		"",
		"not json",
		`"just a string"`,
		`{"code": 12}`,
		`{"bits": 8.5}`,
		`{"signed": "yes"}`,
		`{"code": "+."} this is not json`,
		`{"code": "+."} {"code": "-."}`,
		`{"code": "+."`,
	} {
		_, err := DecodeRequest(strings.NewReader(body))
		assert.ErrorIs(err, ErrRequestInvalid, body)
	}
}

func TestRequestValuesInvalid(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		body  string
		err   error
		index int
	}){
		{`{"input": [1, 2.5]}`, ErrInputNotInteger, 1},
		{`{"input": ["a"]}`, ErrInputNotInteger, 0},
		{`{"input": [null]}`, ErrInputNotInteger, 0},
		{`{"input": [99999999999999999999]}`, ErrInputNotInteger, 0},
		{`{"input": 12}`, ErrInputInvalid, -1},
		{`{"input": {"a": 1}}`, ErrInputInvalid, -1},
		{`{"input": true}`, ErrInputInvalid, -1},
	}

	for _, entry := range table {
		req, err := DecodeRequest(strings.NewReader(entry.body))
		if !assert.NoError(err, entry.body) {
			continue
		}

		_, err = req.Values()
		assert.ErrorIs(err, entry.err, entry.body)

		if entry.index >= 0 {
			var iv *ErrInputValue
			if assert.ErrorAs(err, &iv, entry.body) {
				assert.Equal(entry.index, iv.Index, entry.body)
			}
		}
	}
}

func TestCodes(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]int64{}, Codes(""))
	assert.Equal([]int64{'a', '\n', 0x1f600}, Codes("a\n😀"))
}
