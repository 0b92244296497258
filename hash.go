package nibble

import (
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/blake2b"
)

// Digest helpers return fixed-size arrays that serialize as hex in
// human-readable formats. Use for fingerprinting/identification, NOT for
// passwords.

// SHA256 returns the SHA-256 digest of data.
func SHA256(data []byte) Array[[32]byte] {
	return NewArray(sha256.Sum256(data))
}

// SHA512 returns the SHA-512 digest of data.
func SHA512(data []byte) Array[[64]byte] {
	return NewArray(sha512.Sum512(data))
}

// BLAKE2b256 returns the unkeyed BLAKE2b-256 digest of data.
func BLAKE2b256(data []byte) Array[[32]byte] {
	return NewArray(blake2b.Sum256(data))
}
