package expander

import "github.com/quantalock/qcipher-go/internal/utils"

// DeriveSBox produces a permutation of 0..=255 via a hash-driven
// Fisher-Yates shuffle: T0 = masterSeed; for i from 255 down to 1,
// H = SHA-256(T_i), j = H[0] mod (i+1), swap sbox[i] and sbox[j], and
// T_{i+1} = H. InverseSBox satisfies InverseSBox[sbox[i]] == i for all i.
func DeriveSBox(masterSeed []byte) (sbox [256]byte, inverseSBox [256]byte) {
	for i := range sbox {
		sbox[i] = byte(i)
	}

	t := masterSeed
	for i := 255; i >= 1; i-- {
		h := utils.Sha256(t)
		j := int(h[0]) % (i + 1)
		sbox[i], sbox[j] = sbox[j], sbox[i]
		t = h
	}

	for i, v := range sbox {
		inverseSBox[v] = byte(i)
	}
	return sbox, inverseSBox
}
