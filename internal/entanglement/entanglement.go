// Package entanglement derives qcipher's informational "entanglement pair"
// material. These pairs are never consumed by the round transform or the
// container authentication layer, and they are not stored in the key file;
// they exist purely for display (the CLI's info command), but their derivation still
// advances the chaining seed that feeds the measurement-bases derivation,
// so it always runs even when the pairs themselves are discarded.
package entanglement

import "github.com/quantalock/qcipher-go/internal/utils"

// Derive computes count entanglement pairs chained from seed via SHA-256:
// pair_seed = SHA-256(current); the stored pair is SHA-512(pair_seed);
// current = pair_seed for the next iteration. It returns every pair (each
// 64 bytes) and the chaining seed left after the last one, which is what
// the measurement-bases derivation continues from. When count is zero, the
// returned seed is exactly the input seed, unchanged.
func Derive(seed []byte, count int) (pairs [][]byte, nextSeed []byte) {
	current := seed
	pairs = make([][]byte, count)
	for i := 0; i < count; i++ {
		pairSeed := utils.Sha256(current)
		pairs[i] = utils.Sha512(pairSeed)
		current = pairSeed
	}
	return pairs, current
}
