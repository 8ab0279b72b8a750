package utils

import (
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/sha3"
)

// Sha256 computes the SHA-256 digest of input, returning exactly 32 bytes.
// Every hash used inside the key expander, round transform, and container
// authentication paths goes through this wrapper (or Sha512 below) rather
// than golang.org/x/crypto/sha3. The wire format and every derived table
// are defined byte-for-byte in terms of SHA-256/SHA-512 output, so
// swapping the primitive here would change every downstream byte.
func Sha256(input []byte) []byte {
	h := sha256.Sum256(input)
	return h[:]
}

// Sha512 computes the SHA-512 digest of input, returning exactly 64 bytes.
func Sha512(input []byte) []byte {
	h := sha512.Sum512(input)
	return h[:]
}

// DisplayDigest computes a SHA3-256 digest for purely informational,
// non-authoritative use: the CLI's display label (engine.DisplayLabel). It is never
// consulted by the encrypt/decrypt path or by any correctness check, so it
// is free to use SHA-3 instead of the SHA-256/SHA-512 primitives above.
func DisplayDigest(input []byte) []byte {
	h := sha3.Sum256(input)
	return h[:]
}
