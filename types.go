package qcipher

import "time"

// =============================================================================
// Cipher constants
// =============================================================================

const (
	// BlockSize is the size in bytes of one block processed by the round
	// transform.
	BlockSize = 64

	// Rounds is the number of forward/inverse rounds applied per block.
	Rounds = 16

	// MasterSeedSize is the required length of a MasterSeed.
	MasterSeedSize = 64

	// NonceSize, IVSize, SaltSize are the sizes of the per-file CSPRNG
	// values bound into a ciphertext container.
	NonceSize = 32
	IVSize    = 32
	SaltSize  = 32

	// FingerprintSize is the length of the key fingerprint stored in a
	// ciphertext container.
	FingerprintSize = 32

	// ChecksumSize is the length of a QuantumKey checksum and of a
	// ciphertext container's authentication tag (both SHA-512 output).
	ChecksumSize = 64

	// MinKeyLength and MaxKeyLength bound the requested length of a
	// superposition key.
	MinKeyLength = 1024
	MaxKeyLength = 1 << 30 // 1,073,741,824

	// MaxLatticeDim is the largest lattice basis dimension the expander
	// will construct, regardless of key length.
	MaxLatticeDim = 256

	// MaxEntanglementPairs bounds the informational entanglement pair
	// count, regardless of key length.
	MaxEntanglementPairs = 1024

	// ChecksumSampleSize is the maximum number of superposition key
	// bytes folded into the checksum.
	ChecksumSampleSize = 1024
)

// =============================================================================
// Key material types
// =============================================================================

// MasterSeed is the sole root of trust for every derived table in a
// QuantumKey. It is exactly MasterSeedSize bytes and is never mutated after
// generation; two keys with equal master seeds and key lengths are
// byte-identical in every derived field.
type MasterSeed []byte

// QuantumKey is the aggregate persisted key: a master seed plus every table
// derived from it (see the expander package). All derived fields are pure
// functions of MasterSeed and KeyLength; regenerating them from those two
// values always yields byte-identical tables.
//
// EntanglementPairs are informational only: they are never consumed by the
// block transform or the authentication layer, so this type does not carry
// them as an eager field. Callers that want them (chiefly the CLI's info
// command) call engine.EntanglementPairs(key), which derives them on demand.
type QuantumKey struct {
	MasterSeed MasterSeed

	// SuperpositionKey is the primary keystream material: exactly
	// KeyLength bytes, chained through SHA-512 from MasterSeed.
	SuperpositionKey []byte

	// LatticeBasis is a square matrix of signed 64-bit integers, each
	// entry in [1, 65536]. Its dimension is min(256, KeyLength/8), or
	// zero when KeyLength < 8.
	LatticeBasis [][]int64

	// MeasurementBases selects per-position hash input material for the
	// quantum-XOR layer of the round transform. Length is
	// max(1, KeyLength/8).
	MeasurementBases []byte

	KeyLength uint64
	CreatedAt int64 // Unix seconds

	// Checksum is SHA-512(MasterSeed || SuperpositionKey[:min(1024,len)]).
	Checksum []byte
}

// NewCreatedAt returns the current time as the Unix-seconds value stored in
// a freshly generated QuantumKey's CreatedAt field.
func NewCreatedAt() int64 {
	return time.Now().Unix()
}

// QCipher is the runtime engine combining a QuantumKey with the tables
// derived purely for the round transform: the substitution permutation and
// its inverse, and the sequence of round keys. It is stateless with respect
// to plaintext and safe to share (read-only) across concurrent encrypt or
// decrypt operations on independent files.
type QCipher struct {
	Key *QuantumKey

	// SBox is a permutation of 0..=255. InverseSBox satisfies
	// InverseSBox[SBox[i]] == i for all i.
	SBox        [256]byte
	InverseSBox [256]byte

	// RoundKeys holds Rounds entries of BlockSize bytes each.
	RoundKeys [][]byte
}
