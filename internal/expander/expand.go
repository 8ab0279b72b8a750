package expander

import (
	"fmt"
	"os"
	"sync"

	qcipher "github.com/quantalock/qcipher-go"
	"github.com/quantalock/qcipher-go/internal/core"
	"github.com/quantalock/qcipher-go/internal/entanglement"
	"github.com/quantalock/qcipher-go/internal/utils"
)

// Debug logging, gated by QCIPHER_DEBUG, modeled on the same
// env-var-gated-tracer shape used elsewhere in this codebase's ancestry.
var debugExpand = os.Getenv("QCIPHER_DEBUG") != ""

func logExpand(format string, args ...interface{}) {
	if debugExpand {
		fmt.Fprintf(os.Stderr, "[qcipher-expand] "+format+"\n", args...)
	}
}

// Expand derives every table a QuantumKey needs from a master seed, a
// requested key length, and a creation timestamp, in the reference
// ordering required for saved keys to reload bit-exact:
//
//  1. superposition key (chains through SHA-512 from the master seed)
//  2. entanglement-seed chaining (chains through SHA-256 from the seed
//     left by step 1; the pairs are computed and discarded here, and
//     EntanglementPairs below re-derives them on demand)
//  3. lattice basis (chains through SHA-256 from the master seed,
//     independent of steps 1-2, so it runs concurrently with them)
//  4. measurement bases (one SHA-512 over the seed left by step 2)
//  5. checksum
func Expand(masterSeed []byte, keyLength uint64, createdAt int64) (*qcipher.QuantumKey, error) {
	if len(masterSeed) != qcipher.MasterSeedSize {
		return nil, fmt.Errorf("%w: master seed must be %d bytes", qcipher.ErrInvalidInput, qcipher.MasterSeedSize)
	}
	if err := core.ValidateKeyLength(keyLength); err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	var latticeBasis [][]int64

	wg.Add(1)
	go func() {
		defer wg.Done()
		latticeBasis = DeriveLatticeBasis(masterSeed, keyLength)
	}()

	superpositionKey, seedAfterSuperposition := DeriveSuperpositionKey(masterSeed, keyLength)
	logExpand("superposition key derived: %d bytes", len(superpositionKey))

	pairCount := core.EntanglementPairCount(keyLength)
	_, seedAfterEntanglement := entanglement.Derive(seedAfterSuperposition, pairCount)
	logExpand("entanglement chaining advanced over %d pairs", pairCount)

	measurementBases := DeriveMeasurementBases(seedAfterEntanglement, keyLength)
	logExpand("measurement bases derived: %d bytes", len(measurementBases))

	wg.Wait()
	logExpand("lattice basis dimension: %d", len(latticeBasis))

	sampleLen := core.ChecksumSampleLength(len(superpositionKey))
	checksumInput := make([]byte, 0, len(masterSeed)+sampleLen)
	checksumInput = append(checksumInput, masterSeed...)
	checksumInput = append(checksumInput, superpositionKey[:sampleLen]...)
	checksum := utils.Sha512(checksumInput)

	seedCopy := make(qcipher.MasterSeed, len(masterSeed))
	copy(seedCopy, masterSeed)

	return &qcipher.QuantumKey{
		MasterSeed:       seedCopy,
		SuperpositionKey: superpositionKey,
		LatticeBasis:     latticeBasis,
		MeasurementBases: measurementBases,
		KeyLength:        keyLength,
		CreatedAt:        createdAt,
		Checksum:         checksum,
	}, nil
}

// EntanglementPairs derives the informational entanglement pairs for key on
// demand. It reproduces the exact chaining state entanglement pair
// derivation would have reached during Expand, so the result is
// byte-identical regardless of when it is called.
func EntanglementPairs(key *qcipher.QuantumKey) [][]byte {
	_, seedAfterSuperposition := DeriveSuperpositionKey(key.MasterSeed, key.KeyLength)
	pairCount := core.EntanglementPairCount(key.KeyLength)
	pairs, _ := entanglement.Derive(seedAfterSuperposition, pairCount)
	return pairs
}
