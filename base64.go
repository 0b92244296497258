package nibble

import (
	"encoding/base64"

	"github.com/invopop/jsonschema"
	"github.com/vmihailenco/msgpack/v5"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"gopkg.in/yaml.v3"
)

// Base64 is a byte slice that serializes as a standard, padded base64 string
// in human-readable formats and as a byte string in binary formats.
type Base64 []byte

var _ Describer = Base64(nil)

// ParseBase64 decodes standard base64 text.
func ParseBase64(s string) (Base64, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return Base64(b), nil
}

// String returns the base64 encoding of b.
func (b Base64) String() string {
	return base64.StdEncoding.EncodeToString(b)
}

// MarshalText implements encoding.TextMarshaler.
func (b Base64) MarshalText() ([]byte, error) {
	out := make([]byte, base64.StdEncoding.EncodedLen(len(b)))
	base64.StdEncoding.Encode(out, b)
	return out, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Base64) UnmarshalText(text []byte) error {
	out := make([]byte, base64.StdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Decode(out, text)
	if err != nil {
		return err
	}
	*b = out[:n]
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (b Base64) MarshalYAML() (any, error) {
	return b.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *Base64) UnmarshalYAML(node *yaml.Node) error {
	s, err := yamlScalar(node)
	if err != nil {
		return err
	}
	return b.UnmarshalText([]byte(s))
}

// MarshalCBOR implements cbor.Marshaler.
func (b Base64) MarshalCBOR() ([]byte, error) {
	return marshalCBORBytes(b)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (b *Base64) UnmarshalCBOR(data []byte) error {
	raw, err := unmarshalCBORBytes(data)
	if err != nil {
		return err
	}
	*b = raw
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (b Base64) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeBytes(b)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (b *Base64) DecodeMsgpack(dec *msgpack.Decoder) error {
	raw, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	*b = raw
	return nil
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (b Base64) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return marshalBSONBinary(b)
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (b *Base64) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw, err := unmarshalBSONBinary(t, data)
	if err != nil {
		return err
	}
	*b = raw
	return nil
}

// JSONSchema describes the base64 string form.
func (Base64) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Title:           "Base64",
		Type:            "string",
		Format:          "byte",
		ContentEncoding: "base64",
	}
}
