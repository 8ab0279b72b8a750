// Package engine wires the key expander, block transform, CBC mode, and
// container packages into the operations a caller actually wants:
// generate/save/load a key, build a cipher engine from one, and encrypt or
// decrypt whole files. It is the composition layer the CLI talks to,
// composing independently-derived component tables into one usable API.
package engine

import (
	"encoding/hex"
	"fmt"

	qcipher "github.com/quantalock/qcipher-go"
	"github.com/quantalock/qcipher-go/internal/core"
	"github.com/quantalock/qcipher-go/internal/expander"
	"github.com/quantalock/qcipher-go/internal/utils"
)

// Generate creates a new QuantumKey of the requested length from fresh
// CSPRNG entropy.
func Generate(keyLength uint64) (*qcipher.QuantumKey, error) {
	if err := core.ValidateKeyLength(keyLength); err != nil {
		return nil, err
	}
	seed, err := utils.SecureRandomBytes(qcipher.MasterSeedSize)
	if err != nil {
		return nil, err
	}
	defer utils.Zeroize(seed)

	return expander.Expand(seed, keyLength, qcipher.NewCreatedAt())
}

// GenerateFromSeed deterministically derives a QuantumKey from an explicit
// master seed and creation timestamp. It exists for reproducible testing
// and for LoadKey; production key generation should call Generate.
func GenerateFromSeed(masterSeed []byte, keyLength uint64, createdAt int64) (*qcipher.QuantumKey, error) {
	return expander.Expand(masterSeed, keyLength, createdAt)
}

// EntanglementPairs derives key's informational entanglement pairs on
// demand. They play no role in encryption or authentication; this exists
// for display (see the CLI's info command).
func EntanglementPairs(key *qcipher.QuantumKey) [][]byte {
	return expander.EntanglementPairs(key)
}

// Fingerprint returns the 32-byte identifier used by ciphertext containers
// to name the key they expect: the first 32 bytes of SHA-512(masterSeed).
func Fingerprint(masterSeed []byte) []byte {
	return fingerprintOf(masterSeed)
}

func fingerprintOf(masterSeed []byte) []byte {
	full := utils.Sha512(masterSeed)
	fp := make([]byte, qcipher.FingerprintSize)
	copy(fp, full[:qcipher.FingerprintSize])
	return fp
}

// DisplayLabel returns a short, non-authoritative label identifying a key
// for humans (the CLI's info command). It is never compared against
// anything and never gates a decision, so it is free to use SHA-3 instead
// of the SHA-256/SHA-512 primitives the derivation and container paths are
// pinned to.
func DisplayLabel(key *qcipher.QuantumKey) string {
	return hex.EncodeToString(utils.DisplayDigest(key.MasterSeed))[:16]
}

// NewCipher builds the runtime engine for key: the substitution box, its
// inverse, and the round keys, all derived purely from the master seed.
// Construction is idempotent; calling it twice on the same key produces
// byte-identical tables.
func NewCipher(key *qcipher.QuantumKey) (*qcipher.QCipher, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: nil key", qcipher.ErrInvalidInput)
	}
	if len(key.MasterSeed) != qcipher.MasterSeedSize {
		return nil, fmt.Errorf("%w: master seed must be %d bytes", qcipher.ErrInvalidInput, qcipher.MasterSeedSize)
	}

	sbox, inverseSBox := expander.DeriveSBox(key.MasterSeed)
	roundKeys := expander.DeriveRoundKeys(key.MasterSeed)

	return &qcipher.QCipher{
		Key:         key,
		SBox:        sbox,
		InverseSBox: inverseSBox,
		RoundKeys:   roundKeys,
	}, nil
}
