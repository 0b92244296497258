// Package cbor provides a CBOR codec implementation.
package cbor

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/zoobzio/nibble"
)

// cborCodec implements nibble.Codec for CBOR.
type cborCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// New returns a CBOR codec using the library's default encoding options.
func New() nibble.Codec {
	return &cborCodec{}
}

// NewDeterministic returns a CBOR codec that produces RFC 8949 Core
// Deterministic output, for when byte-for-byte stable encodings are needed
// (hashing, content addressing).
func NewDeterministic() (nibble.Codec, error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return nil, err
	}
	return &cborCodec{enc: em, dec: dm}, nil
}

// ContentType returns the MIME type for CBOR.
func (c *cborCodec) ContentType() string {
	return "application/cbor"
}

// HumanReadable reports false: CBOR is a binary format.
func (c *cborCodec) HumanReadable() bool {
	return false
}

// Marshal encodes v as CBOR.
func (c *cborCodec) Marshal(v any) ([]byte, error) {
	if c.enc != nil {
		return c.enc.Marshal(v)
	}
	return cbor.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func (c *cborCodec) Unmarshal(data []byte, v any) error {
	if c.dec != nil {
		return c.dec.Unmarshal(data, v)
	}
	return cbor.Unmarshal(data, v)
}
