package nibble

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrOddLength indicates hex input with an odd number of digits.
	ErrOddLength = errors.New("odd number of digits")

	// ErrInvalidHexCharacter indicates a character outside 0-9a-fA-F.
	ErrInvalidHexCharacter = errors.New("invalid hex character")

	// ErrInvalidStringLength indicates input that decodes to the wrong number
	// of bytes for a fixed-size target.
	ErrInvalidStringLength = errors.New("invalid string length")

	// ErrBufferSize indicates a caller-supplied buffer of the wrong size.
	ErrBufferSize = errors.New("buffer size mismatch")

	// ErrInvalidCase indicates an unknown Case value.
	ErrInvalidCase = errors.New("invalid case")

	// ErrUnknownCodec indicates no codec is registered for a content type.
	ErrUnknownCodec = errors.New("unknown codec")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")
)

var errNullHex = errors.New("expected hex string, got null")

// InvalidCharacterError reports the first non-hex character in the input.
type InvalidCharacterError struct {
	Char  rune // Offending character
	Index int  // Offset of Char in the input
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Index)
}

func (e *InvalidCharacterError) Unwrap() error {
	return ErrInvalidHexCharacter
}

// LengthError reports input that decodes to the wrong number of bytes for a
// fixed-size target.
type LengthError struct {
	Want int // Bytes the target holds
	Got  int // Bytes the input represents
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("invalid string length: want %d bytes, got %d", e.Want, e.Got)
}

func (e *LengthError) Unwrap() error {
	return ErrInvalidStringLength
}

// BufferSizeError reports a destination buffer that does not match the
// required size exactly.
type BufferSizeError struct {
	Want int
	Got  int
}

func (e *BufferSizeError) Error() string {
	return fmt.Sprintf("buffer size mismatch: want %d, got %d", e.Want, e.Got)
}

func (e *BufferSizeError) Unwrap() error {
	return ErrBufferSize
}

// CodecError represents a serialize/deserialize failure.
// Both the sentinel and the cause are visible to errors.Is and errors.As.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec or the hex decoder
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
