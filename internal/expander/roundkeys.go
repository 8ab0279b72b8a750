package expander

import (
	qcipher "github.com/quantalock/qcipher-go"
	"github.com/quantalock/qcipher-go/internal/utils"
)

// DeriveRoundKeys derives the Rounds round keys used by the block transform.
// R0 = masterSeed; for round r, round_key[r] = SHA-512(R_r) and
// R_{r+1} = round_key[r].
func DeriveRoundKeys(masterSeed []byte) [][]byte {
	roundKeys := make([][]byte, qcipher.Rounds)
	r := masterSeed
	for i := 0; i < qcipher.Rounds; i++ {
		h := utils.Sha512(r)
		roundKeys[i] = h
		r = h
	}
	return roundKeys
}
