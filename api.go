// Package nibble provides hexadecimal encoding and decoding of byte sequences,
// with byte types that serialize as hex in human-readable formats and as raw
// bytes in binary formats.
//
// # Codec Functions
//
// Allocating variants return a fresh result:
//
//	s := nibble.Encode([]byte{0xde, 0xad, 0xbe, 0xef})      // "deadbeef"
//	s = nibble.EncodeUpper([]byte{0xde, 0xad, 0xbe, 0xef})  // "DEADBEEF"
//	b, err := nibble.Decode("DeadBeef")                     // [0xde 0xad 0xbe 0xef]
//
// Slice variants write into a caller buffer of exactly the right size and
// never allocate:
//
//	var buf [8]byte
//	err := nibble.EncodeToSlice(src, buf[:])
//
// # Errors
//
// Malformed input is reported as ErrOddLength, *InvalidCharacterError
// (ErrInvalidHexCharacter) or, for fixed-size targets, *LengthError
// (ErrInvalidStringLength). A destination buffer of the wrong size is
// *BufferSizeError (ErrBufferSize). Nothing in the package panics on bad input.
//
// # Byte Types
//
//   - Bytes - growable buffer, hex in text formats
//   - Array[A] - fixed-size array ([2]byte ... [65]byte), hex in text formats
//   - Base64 - growable buffer, standard base64 in text formats
//
// Each type implements the hooks of encoding/json, encoding/xml,
// gopkg.in/yaml.v3, fxamacker/cbor, vmihailenco/msgpack and mongo-driver bson,
// so a struct field carrying one of them is rendered as text or as a byte
// string according to the format it is written to:
//
//	type Key struct {
//	    ID nibble.Array[[16]byte] `json:"id" cbor:"id"`
//	}
//
// # Serialization Adapter
//
// Serialize and Deserialize apply the same rule to a whole value using any
// Codec. The codec declares whether it is human readable:
//
//	data, err := nibble.Serialize(ctx, json.New(), raw)    // "\"deadbeef\""
//	data, err = nibble.Serialize(ctx, cbor.New(), raw)     // CBOR byte string
//
// # Codec Providers
//
// The following codec implementations are available as subpackages:
//
//   - json - JSON encoding (application/json), human readable
//   - xml - XML encoding (application/xml), human readable
//   - yaml - YAML encoding (application/yaml), human readable
//   - msgpack - MessagePack encoding (application/msgpack), binary
//   - cbor - CBOR encoding (application/cbor), binary
//   - bson - BSON encoding (application/bson), binary, documents only
//   - protobuf - Protocol Buffers (application/x-protobuf), binary, and
//     protojson (application/x-protobuf+json), human readable
package nibble

import "github.com/invopop/jsonschema"

// ToHex is implemented by values that can render themselves as hex.
type ToHex interface {
	// EncodeHex returns the lowercase hex encoding.
	EncodeHex() string

	// EncodeHexUpper returns the uppercase hex encoding.
	EncodeHexUpper() string
}

// FromHex is implemented by values that can be populated from hex text.
// Implementations leave the receiver unchanged when an error is returned.
type FromHex interface {
	FromHex(s string) error
}

// Parse decodes s into a new T using T's FromHex method.
//
//	id, err := nibble.Parse[nibble.Array[[32]byte]](s)
func Parse[T any, PT interface {
	*T
	FromHex
}](s string) (T, error) {
	var v T
	if err := PT(&v).FromHex(s); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Describer is implemented by types that publish a JSON Schema for their
// serialized form. See the schema subpackage.
type Describer interface {
	JSONSchema() *jsonschema.Schema
}
