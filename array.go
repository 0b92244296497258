package nibble

import (
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/vmihailenco/msgpack/v5"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"gopkg.in/yaml.v3"
)

// Size is the set of array shapes Array supports: the common id, nonce,
// digest and key lengths, including 33 and 65 byte compressed and
// uncompressed secp256k1 public keys. For any other length use Bytes and
// check the length, or decode into a caller buffer with DecodeToSlice.
type Size interface {
	[2]byte | [4]byte | [6]byte | [8]byte | [12]byte | [16]byte | [20]byte |
		[24]byte | [28]byte | [32]byte | [33]byte | [48]byte | [64]byte | [65]byte
}

// maxArrayLen bounds the scratch buffers used while decoding into an Array.
const maxArrayLen = 65

// Array is a fixed-size byte array that serializes as a lowercase hex string
// of exactly 2N characters in human-readable formats and as an N-byte byte
// string in binary formats. Decoding input of any other length fails with
// *LengthError.
//
// The zero value is an all-zero array.
type Array[A Size] struct {
	v A
}

var (
	_ ToHex     = Array[[32]byte]{}
	_ FromHex   = (*Array[[32]byte])(nil)
	_ Describer = Array[[32]byte]{}
)

// NewArray wraps v.
func NewArray[A Size](v A) Array[A] {
	return Array[A]{v: v}
}

// ParseArray decodes exactly len(A) bytes of hex text into an Array.
func ParseArray[A Size](s string) (Array[A], error) {
	var a Array[A]
	if err := a.FromHex(s); err != nil {
		return Array[A]{}, err
	}
	return a, nil
}

// Value returns the wrapped array.
func (a Array[A]) Value() A { return a.v }

// Len returns the number of bytes in the array.
func (a Array[A]) Len() int { return len(a.v) }

// Bytes returns a copy of the array contents.
func (a Array[A]) Bytes() []byte {
	b := make([]byte, len(a.v))
	for i := range b {
		b[i] = a.v[i]
	}
	return b
}

// EncodeHex returns the lowercase hex encoding of the array.
func (a Array[A]) EncodeHex() string { return Encode(a.Bytes()) }

// EncodeHexUpper returns the uppercase hex encoding of the array.
func (a Array[A]) EncodeHexUpper() string { return EncodeUpper(a.Bytes()) }

// String returns the lowercase hex encoding of the array.
func (a Array[A]) String() string { return a.EncodeHex() }

// GoString renders the array for %#v.
func (a Array[A]) GoString() string {
	return fmt.Sprintf("nibble.Array[[%d]byte](%s)", len(a.v), a.EncodeHex())
}

// FromHex replaces the array with the bytes represented by s.
// s must be exactly 2*Len() hex digits.
func (a *Array[A]) FromHex(s string) error {
	return decodeArray(&a.v, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Array[A]) MarshalText() ([]byte, error) {
	out := make([]byte, EncodedLen(len(a.v)))
	if err := EncodeToSlice(a.Bytes(), out); err != nil {
		return nil, err
	}
	return out, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Array[A]) UnmarshalText(text []byte) error {
	return decodeArray(&a.v, text)
}

// MarshalYAML implements yaml.Marshaler.
func (a Array[A]) MarshalYAML() (any, error) {
	return a.EncodeHex(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Array[A]) UnmarshalYAML(node *yaml.Node) error {
	s, err := yamlScalar(node)
	if err != nil {
		return err
	}
	return a.FromHex(s)
}

// MarshalCBOR implements cbor.Marshaler.
func (a Array[A]) MarshalCBOR() ([]byte, error) {
	return marshalCBORBytes(a.Bytes())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (a *Array[A]) UnmarshalCBOR(data []byte) error {
	raw, err := unmarshalCBORBytes(data)
	if err != nil {
		return err
	}
	return a.setRaw(raw)
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (a Array[A]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeBytes(a.Bytes())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (a *Array[A]) DecodeMsgpack(dec *msgpack.Decoder) error {
	raw, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	return a.setRaw(raw)
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (a Array[A]) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return marshalBSONBinary(a.Bytes())
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (a *Array[A]) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw, err := unmarshalBSONBinary(t, data)
	if err != nil {
		return err
	}
	return a.setRaw(raw)
}

// JSONSchema describes the hex string form: exactly 2N hex digits.
func (a Array[A]) JSONSchema() *jsonschema.Schema {
	n := EncodedLen(len(a.v))
	minLen, maxLen := uint64(n), uint64(n)
	return &jsonschema.Schema{
		Title:     fmt.Sprintf("Array_%d", len(a.v)),
		Type:      "string",
		MinLength: &minLen,
		MaxLength: &maxLen,
		Pattern:   fmt.Sprintf("^[0-9a-fA-F]{%d}$", n),
	}
}

// setRaw copies raw bytes from a binary format into the array.
func (a *Array[A]) setRaw(raw []byte) error {
	if len(raw) != len(a.v) {
		return &LengthError{Want: len(a.v), Got: len(raw)}
	}
	for i := range raw {
		a.v[i] = raw[i]
	}
	return nil
}

// decodeArray decodes src into dst only if the whole input is valid.
func decodeArray[A Size, T Text](dst *A, src T) error {
	n := len(*dst)
	if len(src)%2 != 0 {
		return ErrOddLength
	}
	if got := DecodedLen(len(src)); got != n {
		return &LengthError{Want: n, Got: got}
	}
	var buf [maxArrayLen]byte
	if err := decodeInto(buf[:n], src); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		(*dst)[i] = buf[i]
	}
	return nil
}
