package api

import (
	"encoding/json"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/ezrec/bfi/engine"
)

const (
	MIME_JSON = "application/json"
	MIME_CBOR = "application/cbor"
)

// Response reports the end state of an interpretation.
type Response struct {
	Config string  `json:"config" cbor:"config"`
	Status string  `json:"status" cbor:"status"`
	Output []int64 `json:"output" cbor:"output"`
}

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	cborEncMode = em
}

// NewResponse converts an engine state into a response document.
func NewResponse(state engine.State) Response {
	output := state.Output
	if output == nil {
		output = []int64{}
	}

	return Response{
		Config: state.Config,
		Status: state.Status.String(),
		Output: output,
	}
}

// EncodeJSON writes the response as JSON.
func (resp Response) EncodeJSON(w io.Writer) error {
	return json.NewEncoder(w).Encode(resp)
}

// EncodeCBOR returns the canonical CBOR encoding of the response.
func (resp Response) EncodeCBOR() ([]byte, error) {
	return cborEncMode.Marshal(resp)
}

// DecodeCBOR reads a CBOR encoded response.
func DecodeCBOR(data []byte) (resp Response, err error) {
	err = cbor.Unmarshal(data, &resp)
	return
}
