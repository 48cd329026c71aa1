package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// Request asks the service to interpret a program.
type Request struct {
	Code   string          `json:"code"`
	Input  json.RawMessage `json:"input,omitempty"`
	Bits   *int            `json:"bits,omitempty"`
	Signed *bool           `json:"signed,omitempty"`
}

// DecodeRequest reads a JSON request document.
func DecodeRequest(r io.Reader) (req Request, err error) {
	dec := json.NewDecoder(r)
	err = dec.Decode(&req)
	if err != nil {
		err = errors.Join(ErrRequestInvalid, err)
		return
	}

	// The body must hold exactly one document.
	var extra json.RawMessage
	if terr := dec.Decode(&extra); terr != io.EOF {
		if terr == nil {
			terr = ErrRequestTrailing
		}
		err = errors.Join(ErrRequestInvalid, terr)
		req = Request{}
	}

	return
}

// Values decodes the input field.
// A string yields the code point of each character, an array yields its
// integers, and an absent or null input yields no values.
func (req *Request) Values() (values []int64, err error) {
	raw := bytes.TrimSpace(req.Input)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return
	}

	switch raw[0] {
	case '"':
		var text string
		err = json.Unmarshal(raw, &text)
		if err != nil {
			err = errors.Join(ErrInputInvalid, err)
			return
		}
		values = Codes(text)
	case '[':
		var items []any
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		err = dec.Decode(&items)
		if err != nil {
			err = errors.Join(ErrInputInvalid, err)
			return
		}
		values = make([]int64, 0, len(items))
		for n, item := range items {
			num, ok := item.(json.Number)
			if !ok {
				err = &ErrInputValue{Index: n, Value: string(mustMarshal(item)), Err: ErrInputNotInteger}
				return
			}
			var value int64
			value, err = num.Int64()
			if err != nil {
				err = &ErrInputValue{Index: n, Value: num.String(), Err: ErrInputNotInteger}
				return
			}
			values = append(values, value)
		}
	default:
		err = ErrInputInvalid
	}

	return
}

// BitsOr returns the requested cell width, or fallback if absent.
func (req *Request) BitsOr(fallback int) int {
	if req.Bits == nil {
		return fallback
	}
	return *req.Bits
}

// SignedOr returns the requested signedness, or fallback if absent.
func (req *Request) SignedOr(fallback bool) bool {
	if req.Signed == nil {
		return fallback
	}
	return *req.Signed
}

// Codes returns the code point of each character of text.
func Codes(text string) (values []int64) {
	values = make([]int64, 0, len(text))
	for _, r := range text {
		values = append(values, int64(r))
	}
	return
}

func mustMarshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		return []byte("?")
	}
	return data
}
