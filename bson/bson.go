// Package bson provides a BSON codec implementation.
//
// BSON top-level values must be documents (structs, maps, bson.D), so the
// codec suits struct-level serialization of nibble byte types rather than
// nibble.Serialize on a bare byte sequence.
package bson

import (
	"github.com/zoobzio/nibble"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonCodec implements nibble.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() nibble.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// HumanReadable reports false: BSON is a binary format.
func (c *bsonCodec) HumanReadable() bool {
	return false
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
