package block

import (
	qcipher "github.com/quantalock/qcipher-go"
	"github.com/quantalock/qcipher-go/internal/utils"
)

// whiten XORs each byte of block against the round key (cycled every 64
// bytes, which is a no-op since a round key is exactly 64 bytes) and the
// superposition key starting at keyPos. The two XORs commute, so the same
// function serves both forward whitening and its inverse.
func whiten(block []byte, roundKey []byte, superKey []byte, keyPos, keyLenForMod int) {
	haveSuperKey := len(superKey) > 0
	for i := range block {
		block[i] ^= roundKey[i%qcipher.BlockSize]
		if haveSuperKey {
			block[i] ^= superKey[(keyPos+i)%keyLenForMod]
		}
	}
}

func substitute(block []byte, sbox *[256]byte) {
	for i := range block {
		block[i] = sbox[block[i]]
	}
}

func inverseSubstitute(block []byte, inverseSBox *[256]byte) {
	for i := range block {
		block[i] = inverseSBox[block[i]]
	}
}

// quantumXOR XORs each byte of block against quantumValue of a per-byte
// seed built from the nonce and a measurement-bases byte. It is its own
// inverse (XOR), so forward and inverse rounds call it identically.
func quantumXOR(block []byte, nonce []byte, bases []byte, basesLenForMod int, keyPos int, blockIndex uint64, round int) {
	haveBases := len(bases) > 0
	qseed := make([]byte, len(nonce)+1)
	copy(qseed, nonce)
	for i := range block {
		var basisByte byte
		if haveBases {
			basisByte = bases[(keyPos+i)%basesLenForMod]
		}
		qseed[len(nonce)] = basisByte
		q := quantumValue(qseed, blockIndex*qcipher.BlockSize+uint64(i), round)
		block[i] ^= q
	}
}

// latticeXOR XORs each byte of block against the low byte of a lattice
// entry selected by hashing per-byte noise material. It is its own inverse
// (XOR), so forward and inverse rounds call it identically; the caller
// gates it on round%4==0 and dimension>0.
func latticeXOR(block []byte, nonce []byte, lattice [][]int64, dimension int, blockIndex uint64, round int) {
	noiseSeed := make([]byte, len(nonce)+3)
	copy(noiseSeed, nonce)
	noiseSeed[len(nonce)+1] = byte(round)
	noiseSeed[len(nonce)+2] = byte(blockIndex % 256)
	for i := range block {
		noiseSeed[len(nonce)] = byte(i)
		h := utils.Sha256(noiseSeed)
		row := int(h[0]) % dimension
		col := int(h[1]) % dimension
		block[i] ^= byte(lattice[row][col] & 0xFF)
	}
}

// diffuse rotates block right by shift positions: out[(i+shift)%64] = in[i].
func diffuse(in []byte, shift int) []byte {
	if shift == 0 {
		return in
	}
	out := make([]byte, qcipher.BlockSize)
	for i := 0; i < qcipher.BlockSize; i++ {
		out[(i+shift)%qcipher.BlockSize] = in[i]
	}
	return out
}

// inverseDiffuse rotates block left by shift positions: out[i] = in[(i+shift)%64].
func inverseDiffuse(in []byte, shift int) []byte {
	if shift == 0 {
		return in
	}
	out := make([]byte, qcipher.BlockSize)
	for i := 0; i < qcipher.BlockSize; i++ {
		out[i] = in[(i+shift)%qcipher.BlockSize]
	}
	return out
}
