package nibble

import (
	"unicode/utf8"
	"unsafe"

	hex "github.com/tmthrgd/go-hex"
)

// Text is any character sequence the decoders accept.
type Text interface {
	~string | ~[]byte
}

// invalidNibble marks bytes outside 0-9a-fA-F in the reverse table.
const invalidNibble = 0xff

var reverse = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalidNibble
	}
	for c := byte('0'); c <= '9'; c++ {
		t[c] = c - '0'
	}
	for c := byte('a'); c <= 'f'; c++ {
		t[c] = c - 'a' + 10
		t[c-'a'+'A'] = c - 'a' + 10
	}
	return t
}()

// EncodedLen returns the length of the hex encoding of n bytes.
func EncodedLen(n int) int { return n * 2 }

// DecodedLen returns the number of bytes represented by n hex digits.
func DecodedLen(n int) int { return n / 2 }

// Encode returns the lowercase hex encoding of src.
func Encode(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	hex.Encode(dst, src)
	return unsafeString(dst)
}

// EncodeUpper returns the uppercase hex encoding of src.
func EncodeUpper(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	hex.EncodeUpper(dst, src)
	return unsafeString(dst)
}

// unsafeString converts b to a string without copying. b must not be
// modified afterwards.
func unsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// EncodeToSlice writes the lowercase hex encoding of src into dst.
// dst must be exactly EncodedLen(len(src)) long; otherwise a *BufferSizeError
// is returned and dst is left untouched.
func EncodeToSlice(src, dst []byte) error {
	if want := EncodedLen(len(src)); len(dst) != want {
		return &BufferSizeError{Want: want, Got: len(dst)}
	}
	hex.Encode(dst, src)
	return nil
}

// EncodeUpperToSlice is EncodeToSlice with uppercase digits.
func EncodeUpperToSlice(src, dst []byte) error {
	if want := EncodedLen(len(src)); len(dst) != want {
		return &BufferSizeError{Want: want, Got: len(dst)}
	}
	hex.EncodeUpper(dst, src)
	return nil
}

// Decode returns the bytes represented by the hex digits in src.
// Upper and lower case digits are both accepted.
//
// An odd-length src fails with ErrOddLength before any character is
// inspected. The first non-hex character fails with *InvalidCharacterError.
func Decode[T Text](src T) ([]byte, error) {
	if len(src)%2 != 0 {
		return nil, ErrOddLength
	}
	dst := make([]byte, DecodedLen(len(src)))
	if err := decodeInto(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

// DecodeString is Decode for string input.
func DecodeString(s string) ([]byte, error) {
	return Decode(s)
}

// DecodeToSlice decodes src into dst without allocating.
// dst must be exactly DecodedLen(len(src)) long; otherwise a
// *BufferSizeError is returned. Validation errors match Decode.
// The contents of dst are unspecified when an error is returned.
func DecodeToSlice[T Text](src T, dst []byte) error {
	if len(src)%2 != 0 {
		return ErrOddLength
	}
	if want := DecodedLen(len(src)); len(dst) != want {
		return &BufferSizeError{Want: want, Got: len(dst)}
	}
	return decodeInto(dst, src)
}

// decodeInto assumes len(src) == 2*len(dst).
func decodeInto[T Text](dst []byte, src T) error {
	for i := range dst {
		hi := reverse[src[2*i]]
		if hi == invalidNibble {
			return invalidCharacter(src, 2*i)
		}
		lo := reverse[src[2*i+1]]
		if lo == invalidNibble {
			return invalidCharacter(src, 2*i+1)
		}
		dst[i] = hi<<4 | lo
	}
	return nil
}

func invalidCharacter[T Text](src T, index int) error {
	end := min(index+utf8.UTFMax, len(src))
	r, _ := utf8.DecodeRuneInString(string(src[index:end]))
	return &InvalidCharacterError{Char: r, Index: index}
}
