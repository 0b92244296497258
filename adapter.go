package nibble

import (
	"context"
	"fmt"
	"time"
)

// Serialize writes b with c: as a lowercase hex string when c is human
// readable, as raw bytes otherwise.
//
// Failures are returned as *CodecError wrapping ErrMarshal.
func Serialize(ctx context.Context, c Codec, b []byte) ([]byte, error) {
	return SerializeCase(ctx, c, b, CaseLower)
}

// SerializeUpper is Serialize with uppercase hex digits.
func SerializeUpper(ctx context.Context, c Codec, b []byte) ([]byte, error) {
	return SerializeCase(ctx, c, b, CaseUpper)
}

// SerializeCase is Serialize with an explicit digit case. The case has no
// effect on binary codecs.
func SerializeCase(ctx context.Context, c Codec, b []byte, cs Case) ([]byte, error) {
	if !IsValidCase(cs) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCase, cs)
	}

	start := time.Now()
	mode := modeOf(c)

	var v any = b
	if mode == ModeHex {
		v = EncodeCase(b, cs)
	}

	data, err := c.Marshal(v)
	if err != nil {
		data = nil
		err = newCodecError(ErrMarshal, err)
	}

	emitSerializeComplete(ctx, c.ContentType(), mode, len(data), time.Since(start), err)
	return data, err
}

// Deserialize reads a byte sequence written by Serialize. Human-readable
// codecs must carry a hex string; any case is accepted.
//
// Failures, including malformed hex, are returned as *CodecError wrapping
// ErrUnmarshal and the underlying cause.
func Deserialize(ctx context.Context, c Codec, data []byte) ([]byte, error) {
	start := time.Now()
	mode := modeOf(c)

	b, err := deserialize(c, mode, data)

	emitDeserializeComplete(ctx, c.ContentType(), mode, len(data), time.Since(start), err)
	return b, err
}

// DeserializeInto is Deserialize for a fixed-size destination. The decoded
// sequence must be exactly len(dst) bytes; otherwise the error wraps
// *LengthError and dst is untouched.
func DeserializeInto(ctx context.Context, c Codec, data []byte, dst []byte) error {
	b, err := Deserialize(ctx, c, data)
	if err != nil {
		return err
	}
	if len(b) != len(dst) {
		return newCodecError(ErrUnmarshal, &LengthError{Want: len(dst), Got: len(b)})
	}
	copy(dst, b)
	return nil
}

func deserialize(c Codec, mode string, data []byte) ([]byte, error) {
	if mode == ModeHex {
		// decode through a pointer so a null document is not mistaken for ""
		var s *string
		if err := c.Unmarshal(data, &s); err != nil {
			return nil, newCodecError(ErrUnmarshal, err)
		}
		if s == nil {
			return nil, newCodecError(ErrUnmarshal, errNullHex)
		}
		b, err := Decode(*s)
		if err != nil {
			return nil, newCodecError(ErrUnmarshal, err)
		}
		return b, nil
	}

	var b []byte
	if err := c.Unmarshal(data, &b); err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}
	return b, nil
}
