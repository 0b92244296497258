package nibble

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
	"gopkg.in/yaml.v3"
)

// Binary format hooks shared by Bytes, Array and Base64. Each writes the raw
// byte sequence in the format's native byte-string representation.

var errMalformedBSONBinary = errors.New("malformed BSON binary value")

func marshalCBORBytes(b []byte) ([]byte, error) {
	return cbor.Marshal(b)
}

func unmarshalCBORBytes(data []byte) ([]byte, error) {
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func marshalBSONBinary(b []byte) (bsontype.Type, []byte, error) {
	return bsontype.Binary, bsoncore.AppendBinary(nil, bsontype.BinaryGeneric, b), nil
}

func unmarshalBSONBinary(t bsontype.Type, data []byte) ([]byte, error) {
	switch t {
	case bsontype.Null:
		return nil, nil
	case bsontype.Binary:
		_, bin, _, ok := bsoncore.ReadBinary(data)
		if !ok {
			return nil, errMalformedBSONBinary
		}
		return bytes.Clone(bin), nil
	default:
		return nil, fmt.Errorf("cannot decode BSON %s into a byte sequence", t)
	}
}

// yamlScalar reads a YAML scalar node as a string.
func yamlScalar(node *yaml.Node) (string, error) {
	var s string
	if err := node.Decode(&s); err != nil {
		return "", err
	}
	return s, nil
}
