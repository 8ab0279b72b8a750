package engine

import (
	"fmt"

	qcipher "github.com/quantalock/qcipher-go"
	"github.com/quantalock/qcipher-go/container"
	"github.com/quantalock/qcipher-go/internal/utils"
)

// SaveKey serializes key to its on-disk key file representation. The
// caller is responsible for writing the returned bytes wherever they need
// to go (see cmd/qcipher-cli, which writes them to a path).
func SaveKey(key *qcipher.QuantumKey) ([]byte, error) {
	return container.WriteKeyFile(key)
}

// LoadKey parses a key file, re-expands the master seed it contains, and
// verifies the recomputed checksum against the one stored on disk before
// trusting anything else in the file.
func LoadKey(data []byte) (*qcipher.QuantumKey, error) {
	hdr, err := container.ReadKeyFile(data)
	if err != nil {
		return nil, err
	}

	key, err := GenerateFromSeed(hdr.MasterSeed, hdr.KeyLength, hdr.CreatedAt)
	if err != nil {
		return nil, err
	}

	if !utils.ConstantTimeEqual(key.Checksum, hdr.Checksum) {
		return nil, fmt.Errorf("%w: recomputed checksum does not match stored checksum", qcipher.ErrCorruptContainer)
	}

	// The measurement bases travel with the file rather than being
	// re-derived, matching what Expand would have produced; overwriting
	// here is a no-op on an intact file and keeps LoadKey the single
	// source of truth for what a reloaded key looks like.
	key.MeasurementBases = hdr.MeasurementBases
	key.Checksum = hdr.Checksum

	return key, nil
}
