package expander

import (
	"github.com/quantalock/qcipher-go/internal/core"
	"github.com/quantalock/qcipher-go/internal/utils"
)

// DeriveLatticeBasis produces a D x D matrix of signed 64-bit integers, each
// entry in [1, 65536], where D = core.LatticeDimension(keyLength). The
// chain runs independently of every other derivation, starting fresh from
// masterSeed: U0 = masterSeed; for each entry in row-major order,
// H = SHA-256(U_k), v = little-endian uint32(H[0..4)), entry = (v mod
// 65536) + 1, and U_{k+1} = H.
func DeriveLatticeBasis(masterSeed []byte, keyLength uint64) [][]int64 {
	d := core.LatticeDimension(keyLength)
	if d == 0 {
		return nil
	}

	basis := make([][]int64, d)
	for i := range basis {
		basis[i] = make([]int64, d)
	}

	u := masterSeed
	for row := 0; row < d; row++ {
		for col := 0; col < d; col++ {
			h := utils.Sha256(u)
			v := uint32(h[0]) | uint32(h[1])<<8 | uint32(h[2])<<16 | uint32(h[3])<<24
			basis[row][col] = int64(v%65536) + 1
			u = h
		}
	}
	return basis
}
