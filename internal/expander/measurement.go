package expander

import (
	"github.com/quantalock/qcipher-go/internal/core"
	"github.com/quantalock/qcipher-go/internal/utils"
)

// DeriveMeasurementBases produces L = core.MeasurementBasesLength(keyLength)
// bytes by hashing the chaining seed left by the entanglement-pair
// derivation once with SHA-512 and cycling through its 64 bytes:
// B = SHA-512(chainSeed); measurement_bases[i] = B[i mod 64].
func DeriveMeasurementBases(chainSeed []byte, keyLength uint64) []byte {
	l := core.MeasurementBasesLength(keyLength)
	b := utils.Sha512(chainSeed)
	out := make([]byte, l)
	for i := range out {
		out[i] = b[i%64]
	}
	return out
}
