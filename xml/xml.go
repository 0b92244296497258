// Package xml provides a XML codec implementation.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/nibble"
)

// xmlCodec implements nibble.Codec for XML.
type xmlCodec struct{}

// New returns a XML codec.
func New() nibble.Codec {
	return &xmlCodec{}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// HumanReadable reports true: XML is a text format.
func (c *xmlCodec) HumanReadable() bool {
	return true
}

// Marshal encodes v as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
