// Package block implements the qcipher 64-byte, 16-round block transform
// and its bit-exact inverse: key whitening, substitution, a quantum-flavored
// XOR layer, a periodically-gated lattice XOR layer, and a rotation-based
// diffusion step.
package block

import (
	"fmt"

	qcipher "github.com/quantalock/qcipher-go"
)

// EncryptBlock applies the forward 16-round transform to a 64-byte block.
// blockIndex selects the caller's position in the keystream (via
// key_pos = blockIndex mod len(superposition key)) and participates in the
// quantum and lattice layers; nonce is the 32-byte value bound to the whole
// file.
func EncryptBlock(c *qcipher.QCipher, in []byte, blockIndex uint64, nonce []byte) ([]byte, error) {
	if len(in) != qcipher.BlockSize {
		return nil, fmt.Errorf("block: input must be %d bytes, got %d", qcipher.BlockSize, len(in))
	}

	key := c.Key
	keyLenForMod := len(key.SuperpositionKey)
	if keyLenForMod == 0 {
		keyLenForMod = 1
	}
	basesLenForMod := len(key.MeasurementBases)
	if basesLenForMod == 0 {
		basesLenForMod = 1
	}
	keyPos := int(blockIndex % uint64(keyLenForMod))
	dimension := len(key.LatticeBasis)

	current := append([]byte(nil), in...)
	for r := 0; r < qcipher.Rounds; r++ {
		whiten(current, c.RoundKeys[r], key.SuperpositionKey, keyPos, keyLenForMod)
		substitute(current, &c.SBox)
		quantumXOR(current, nonce, key.MeasurementBases, basesLenForMod, keyPos, blockIndex, r)
		if r%4 == 0 && dimension > 0 {
			latticeXOR(current, nonce, key.LatticeBasis, dimension, blockIndex, r)
		}
		shift := int(c.RoundKeys[r][0]) % qcipher.BlockSize
		current = diffuse(current, shift)
	}
	return current, nil
}

// DecryptBlock applies the inverse of the 16 rounds, in reverse order, to
// recover the original 64-byte block.
func DecryptBlock(c *qcipher.QCipher, in []byte, blockIndex uint64, nonce []byte) ([]byte, error) {
	if len(in) != qcipher.BlockSize {
		return nil, fmt.Errorf("block: input must be %d bytes, got %d", qcipher.BlockSize, len(in))
	}

	key := c.Key
	keyLenForMod := len(key.SuperpositionKey)
	if keyLenForMod == 0 {
		keyLenForMod = 1
	}
	basesLenForMod := len(key.MeasurementBases)
	if basesLenForMod == 0 {
		basesLenForMod = 1
	}
	keyPos := int(blockIndex % uint64(keyLenForMod))
	dimension := len(key.LatticeBasis)

	current := append([]byte(nil), in...)
	for r := qcipher.Rounds - 1; r >= 0; r-- {
		shift := int(c.RoundKeys[r][0]) % qcipher.BlockSize
		current = inverseDiffuse(current, shift)
		if r%4 == 0 && dimension > 0 {
			latticeXOR(current, nonce, key.LatticeBasis, dimension, blockIndex, r)
		}
		quantumXOR(current, nonce, key.MeasurementBases, basesLenForMod, keyPos, blockIndex, r)
		inverseSubstitute(current, &c.InverseSBox)
		whiten(current, c.RoundKeys[r], key.SuperpositionKey, keyPos, keyLenForMod)
	}
	return current, nil
}
