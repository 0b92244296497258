// Package protobuf provides Protocol Buffers codecs: the binary wire format
// and its canonical JSON mapping.
//
// Besides proto.Message values, both codecs accept bare byte sequences and
// strings, carried as google.protobuf.BytesValue and StringValue.
package protobuf

import (
	"fmt"

	"github.com/zoobzio/nibble"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// protoCodec implements nibble.Codec for protobuf and protojson.
type protoCodec struct {
	json bool
}

// New returns a binary protobuf codec.
func New() nibble.Codec {
	return &protoCodec{}
}

// JSON returns a protojson codec.
func JSON() nibble.Codec {
	return &protoCodec{json: true}
}

// ContentType returns the MIME type for the codec.
func (c *protoCodec) ContentType() string {
	if c.json {
		return "application/x-protobuf+json"
	}
	return "application/x-protobuf"
}

// HumanReadable reports true for protojson.
func (c *protoCodec) HumanReadable() bool {
	return c.json
}

// Marshal encodes v, which must be a proto.Message, []byte or string.
func (c *protoCodec) Marshal(v any) ([]byte, error) {
	var m proto.Message
	switch x := v.(type) {
	case proto.Message:
		m = x
	case []byte:
		m = wrapperspb.Bytes(x)
	case string:
		m = wrapperspb.String(x)
	default:
		return nil, fmt.Errorf("protobuf: cannot marshal %T", v)
	}

	if c.json {
		return protojson.Marshal(m)
	}
	return proto.Marshal(m)
}

// Unmarshal decodes data into v, which must be a proto.Message, *[]byte,
// *string or **string.
func (c *protoCodec) Unmarshal(data []byte, v any) error {
	switch x := v.(type) {
	case proto.Message:
		return c.unmarshal(data, x)
	case *[]byte:
		var w wrapperspb.BytesValue
		if err := c.unmarshal(data, &w); err != nil {
			return err
		}
		*x = w.GetValue()
		return nil
	case *string:
		var w wrapperspb.StringValue
		if err := c.unmarshal(data, &w); err != nil {
			return err
		}
		*x = w.GetValue()
		return nil
	case **string:
		var w wrapperspb.StringValue
		if err := c.unmarshal(data, &w); err != nil {
			return err
		}
		s := w.GetValue()
		*x = &s
		return nil
	default:
		return fmt.Errorf("protobuf: cannot unmarshal into %T", v)
	}
}

func (c *protoCodec) unmarshal(data []byte, m proto.Message) error {
	if c.json {
		return protojson.Unmarshal(data, m)
	}
	return proto.Unmarshal(data, m)
}
