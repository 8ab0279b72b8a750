package expander

import "github.com/quantalock/qcipher-go/internal/utils"

// DeriveSuperpositionKey expands masterSeed into exactly keyLength bytes of
// keystream material by repeatedly hashing forward with SHA-512: S0 =
// masterSeed, H_b = SHA-512(S_b), bytes from H_b are appended to the output
// until keyLength is reached (the final block may be truncated), and
// S_{b+1} = H_b regardless of how much of H_b was actually appended.
//
// It also returns the full 64-byte chaining seed left after the last block,
// the value the entanglement-pair derivation continues from, independent
// of whether the final superposition block was truncated.
func DeriveSuperpositionKey(masterSeed []byte, keyLength uint64) (key []byte, nextSeed []byte) {
	out := make([]byte, 0, keyLength)
	seed := masterSeed
	for uint64(len(out)) < keyLength {
		h := utils.Sha512(seed)
		remaining := keyLength - uint64(len(out))
		n := uint64(len(h))
		if remaining < n {
			n = remaining
		}
		out = append(out, h[:n]...)
		seed = h
	}
	return out, seed
}
