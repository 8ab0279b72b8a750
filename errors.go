package qcipher

import "errors"

// Sentinel errors, checked with errors.Is by callers. These are the taxonomy
// from the design's error handling section; every failure surfaced across a
// package boundary wraps one of these with fmt.Errorf("...: %w", ...) so the
// underlying kind survives.
var (
	// ErrInvalidKeyLength is returned when a requested superposition key
	// length falls outside [MinKeyLength, MaxKeyLength].
	ErrInvalidKeyLength = errors.New("qcipher: invalid key length")

	// ErrInvalidInput is returned when an operation is given empty input
	// it cannot meaningfully process (e.g. encrypting an empty file).
	ErrInvalidInput = errors.New("qcipher: invalid input")

	// ErrCorruptContainer is returned when a ciphertext or key container
	// fails a structural check: too short, bad magic, unsupported
	// version, or an internal size field that cannot be trusted.
	ErrCorruptContainer = errors.New("qcipher: corrupt container")

	// ErrWrongKey is returned when a ciphertext container's key
	// fingerprint does not match the loaded key. Distinguished from
	// ErrIntegrityFailure so a caller can tell "wrong key" from
	// "tampered file".
	ErrWrongKey = errors.New("qcipher: wrong key")

	// ErrIntegrityFailure is returned when a ciphertext container's
	// authentication tag does not match the recomputed value.
	ErrIntegrityFailure = errors.New("qcipher: integrity failure")

	// ErrRandomnessFailure is returned when the CSPRNG refuses to
	// produce bytes.
	ErrRandomnessFailure = errors.New("qcipher: randomness failure")

	// ErrIOFailure is returned when an underlying read or write fails.
	ErrIOFailure = errors.New("qcipher: io failure")
)
