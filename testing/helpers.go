// Package testing provides test utilities for nibble.
package testing

import (
	"testing"

	"github.com/zoobzio/nibble"
	"github.com/zoobzio/nibble/cbor"
	"github.com/zoobzio/nibble/json"
	"github.com/zoobzio/nibble/msgpack"
	"github.com/zoobzio/nibble/protobuf"
	"github.com/zoobzio/nibble/xml"
	"github.com/zoobzio/nibble/yaml"
)

// FixtureHex is the hex form of Fixture.
const FixtureHex = "0123456789abcdef0123456789abcdef"

// Fixture returns a fresh copy of the 16-byte test fixture.
func Fixture() []byte {
	return []byte{
		0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
		0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
	}
}

// FixtureArray returns Fixture as an Array.
func FixtureArray() nibble.Array[[16]byte] {
	var a [16]byte
	copy(a[:], Fixture())
	return nibble.NewArray(a)
}

// Codecs returns every codec that can carry a bare byte sequence through
// nibble.Serialize. BSON is excluded: its top-level values must be documents.
func Codecs() []nibble.Codec {
	return []nibble.Codec{
		json.New(),
		xml.New(),
		yaml.New(),
		msgpack.New(),
		cbor.New(),
		protobuf.New(),
		protobuf.JSON(),
	}
}

// MustDecode decodes hex test data, failing the test on error.
func MustDecode(tb testing.TB, s string) []byte {
	tb.Helper()
	b, err := nibble.Decode(s)
	if err != nil {
		tb.Fatalf("Decode(%q) error: %v", s, err)
	}
	return b
}

// Record is a test type carrying every nibble byte type.
type Record struct {
	ID     nibble.Array[[16]byte] `json:"id" xml:"id" yaml:"id" msgpack:"id" cbor:"id" bson:"id"`
	Digest nibble.Array[[32]byte] `json:"digest" xml:"digest" yaml:"digest" msgpack:"digest" cbor:"digest" bson:"digest"`
	Data   nibble.Bytes           `json:"data" xml:"data" yaml:"data" msgpack:"data" cbor:"data" bson:"data"`
	Blob   nibble.Base64          `json:"blob" xml:"blob" yaml:"blob" msgpack:"blob" cbor:"blob" bson:"blob"`
}

// FixtureRecord returns a populated Record.
func FixtureRecord() Record {
	return Record{
		ID:     FixtureArray(),
		Digest: nibble.SHA256(Fixture()),
		Data:   nibble.Bytes{0xde, 0xad, 0xbe, 0xef},
		Blob:   nibble.Base64("hello"),
	}
}
