// Package utils provides low-level helpers shared across the qcipher
// pipeline: a CSPRNG wrapper, constant-time comparison, and hash-primitive
// wrappers.
package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
	"runtime"

	qcipher "github.com/quantalock/qcipher-go"
)

// RandReader is the CSPRNG source. Tests may swap it for a deterministic
// reader; production code always uses crypto/rand.Reader.
var RandReader io.Reader = rand.Reader

// SecureRandomBytes generates n cryptographically secure random bytes from
// RandReader.
func SecureRandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(RandReader, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", qcipher.ErrRandomnessFailure, err)
	}
	return buf, nil
}

// ConstantTimeEqual compares two byte slices in constant time. It returns
// true if the slices are equal, false otherwise. It leaks only the length of
// the slices being compared.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Zeroize overwrites a byte slice with zeros. Used to clear sensitive
// intermediate seeds from memory once a derivation step no longer needs
// them. runtime.KeepAlive prevents the compiler from eliminating the stores
// as dead code.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
