package nibble

import (
	"github.com/invopop/jsonschema"
	"github.com/vmihailenco/msgpack/v5"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"gopkg.in/yaml.v3"
)

// Bytes is a byte slice that serializes as a lowercase hex string in
// human-readable formats and as a byte string in binary formats.
type Bytes []byte

var (
	_ ToHex     = Bytes(nil)
	_ FromHex   = (*Bytes)(nil)
	_ Describer = Bytes(nil)
)

// ParseBytes decodes hex text into Bytes.
func ParseBytes(s string) (Bytes, error) {
	b, err := Decode(s)
	if err != nil {
		return nil, err
	}
	return Bytes(b), nil
}

// EncodeHex returns the lowercase hex encoding of b.
func (b Bytes) EncodeHex() string { return Encode(b) }

// EncodeHexUpper returns the uppercase hex encoding of b.
func (b Bytes) EncodeHexUpper() string { return EncodeUpper(b) }

// String returns the lowercase hex encoding of b.
func (b Bytes) String() string { return Encode(b) }

// FromHex replaces b with the bytes represented by s.
func (b *Bytes) FromHex(s string) error {
	return b.UnmarshalText([]byte(s))
}

// MarshalText implements encoding.TextMarshaler.
func (b Bytes) MarshalText() ([]byte, error) {
	out := make([]byte, EncodedLen(len(b)))
	if err := EncodeToSlice(b, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Bytes) UnmarshalText(text []byte) error {
	d, err := Decode(text)
	if err != nil {
		return err
	}
	*b = d
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (b Bytes) MarshalYAML() (any, error) {
	return b.EncodeHex(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *Bytes) UnmarshalYAML(node *yaml.Node) error {
	s, err := yamlScalar(node)
	if err != nil {
		return err
	}
	return b.FromHex(s)
}

// MarshalCBOR implements cbor.Marshaler.
func (b Bytes) MarshalCBOR() ([]byte, error) {
	return marshalCBORBytes(b)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (b *Bytes) UnmarshalCBOR(data []byte) error {
	raw, err := unmarshalCBORBytes(data)
	if err != nil {
		return err
	}
	*b = raw
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (b Bytes) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeBytes(b)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (b *Bytes) DecodeMsgpack(dec *msgpack.Decoder) error {
	raw, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	*b = raw
	return nil
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (b Bytes) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return marshalBSONBinary(b)
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (b *Bytes) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw, err := unmarshalBSONBinary(t, data)
	if err != nil {
		return err
	}
	*b = raw
	return nil
}

// JSONSchema describes the hex string form.
func (Bytes) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Title:   "Bytes",
		Type:    "string",
		Pattern: "^([0-9a-fA-F]{2})*$",
	}
}
