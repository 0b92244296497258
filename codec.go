package nibble

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// HumanReadable reports whether the format is text meant for people.
	// Byte sequences are written as hex strings to human-readable codecs and
	// as raw bytes to the rest.
	HumanReadable() bool

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}
