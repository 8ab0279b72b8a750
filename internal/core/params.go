// Package core provides parameter validation shared across the qcipher
// pipeline: key length bounds, container version checks, and the small
// derived-dimension formulas the expander and block transform both need.
package core

import (
	"fmt"

	qcipher "github.com/quantalock/qcipher-go"
)

// ContainerVersion is the only version this implementation understands, for
// both the ciphertext and key container formats.
const ContainerVersion = 1

// ValidateKeyLength checks that a requested superposition key length falls
// within the allowed range.
func ValidateKeyLength(keyLength uint64) error {
	if keyLength < qcipher.MinKeyLength || keyLength > qcipher.MaxKeyLength {
		return fmt.Errorf("%w: %d not in [%d, %d]", qcipher.ErrInvalidKeyLength, keyLength, qcipher.MinKeyLength, qcipher.MaxKeyLength)
	}
	return nil
}

// LatticeDimension returns D = min(MaxLatticeDim, keyLength/8), or zero when
// keyLength < 8.
func LatticeDimension(keyLength uint64) int {
	if keyLength < 8 {
		return 0
	}
	d := keyLength / 8
	if d > qcipher.MaxLatticeDim {
		d = qcipher.MaxLatticeDim
	}
	return int(d)
}

// MeasurementBasesLength returns L = max(1, keyLength/8).
func MeasurementBasesLength(keyLength uint64) int {
	l := keyLength / 8
	if l < 1 {
		l = 1
	}
	return int(l)
}

// EntanglementPairCount returns P = min(keyLength/128, MaxEntanglementPairs).
func EntanglementPairCount(keyLength uint64) int {
	p := keyLength / 128
	if p > qcipher.MaxEntanglementPairs {
		p = qcipher.MaxEntanglementPairs
	}
	return int(p)
}

// ChecksumSampleLength returns min(ChecksumSampleSize, len(superpositionKey)).
func ChecksumSampleLength(superpositionKeyLen int) int {
	if superpositionKeyLen < qcipher.ChecksumSampleSize {
		return superpositionKeyLen
	}
	return qcipher.ChecksumSampleSize
}

// ValidateContainerVersion checks a container's version byte.
func ValidateContainerVersion(version byte) error {
	if version != ContainerVersion {
		return fmt.Errorf("%w: unsupported version %d", qcipher.ErrCorruptContainer, version)
	}
	return nil
}
