package block

import (
	"math"

	"github.com/quantalock/qcipher-go/internal/utils"
)

// quantumValue derives the pseudo-quantum "measurement" byte used by the
// round transform's quantum-XOR layer. It hashes seed material bound to a
// byte index and round number, splits the digest into two amplitudes and a
// two-bit basis selector, and computes one of four fixed probabilities
// depending on the basis before scaling back into a byte.
//
// Every operation here runs at IEEE-754 double precision with standard
// rounding, no fused multiply-add, no reassociation, so the result is
// byte-identical across platforms and Go versions. This is the one place
// in the transform where floating point participates in an otherwise
// integer/byte pipeline.
func quantumValue(seed []byte, index uint64, round int) byte {
	input := make([]byte, 0, len(seed)+3)
	input = append(input, seed...)
	input = append(input, byte(index&0xFF), byte((index>>8)&0xFF), byte(round&0xFF))
	h := utils.Sha256(input)

	alpha := float64(h[0]) / 255.0
	beta := float64(h[1]) / 255.0
	basis := h[2] & 0x03
	// The explicit conversions force each product to be rounded on its own,
	// which keeps the compiler from fusing the sum into a multiply-add.
	n := math.Sqrt(float64(alpha*alpha) + float64(beta*beta))

	if n < 0.0001 {
		return h[3]
	}

	var p float64
	switch basis {
	case 0:
		p = (alpha / n) * (alpha / n)
	case 1:
		p = 0.5 + 0.25*(alpha*beta)/(n*n)
	case 2:
		p = 0.5 - 0.25*(alpha*beta)/(n*n)
	case 3:
		p = alpha / n
	}

	// Every basis keeps p within [0, 1] (bases 1 and 2 stay within
	// [0.375, 0.625], since alpha*beta is at most half of n*n), so the
	// floored value fits in a byte; the int64 conversion truncates rather
	// than clamps.
	return byte(int64(math.Floor(p * 255)))
}
