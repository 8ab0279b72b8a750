// Package qcipher implements the qcipher symmetric file-encryption scheme:
// a deterministic, seed-derived, 16-round block cipher run in CBC mode
// behind an authenticated container format.
//
// The "quantum"/"lattice" naming throughout this package (superposition key,
// entanglement pairs, measurement bases, lattice basis) names the shape of a
// derivation, not an implementation of the corresponding physical or
// cryptographic concept. Every derivation is a classical, deterministic
// byte-wise transform over SHA-256/SHA-512 output.
//
// WARNING: this is an educational construction. It has not been
// cryptanalytically reviewed and makes no constant-time guarantees. Do not
// use it to protect data you actually care about.
package qcipher

// Version of the qcipher-go implementation.
const Version = "1.0.0"

// This package holds only the shared types, constants, and sentinel errors
// (QuantumKey, QCipher, block/key-size constants, the Err* values in
// errors.go).
// The operations that build on them live one layer up, in engine:
//
//   - engine.Generate(keyLength) - create a new QuantumKey from fresh CSPRNG entropy
//   - engine.SaveKey(key) / engine.LoadKey(data) - key container round-trip
//   - engine.NewCipher(key) - build the QCipher engine (sbox, inverse sbox, round keys)
//   - engine.EncryptBytes(cipher, plaintext) - produce a ciphertext container
//   - engine.DecryptBytes(cipher, container) - recover the original plaintext
//
// Keeping this package free of internal imports lets every other package
// depend on it without risking an import cycle.
