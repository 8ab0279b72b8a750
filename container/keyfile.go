package container

import (
	"bytes"
	"encoding/binary"
	"fmt"

	qcipher "github.com/quantalock/qcipher-go"
	"github.com/quantalock/qcipher-go/internal/core"
)

// keyFileMagic spells "QKEY" in ASCII.
var keyFileMagic = [4]byte{0x51, 0x4B, 0x45, 0x59}

// keyFileHeaderSize covers every fixed-width field: magic, version,
// key_length, created_at, master_seed, checksum, bases_length. The writer
// appends the fields in this order with no gap, and the reader's fixed
// offsets (5, 13, 21, 85, 149, 153) are the running sums of the same
// widths.
const keyFileHeaderSize = 4 + 1 + 8 + 8 + qcipher.MasterSeedSize + qcipher.ChecksumSize + 4 // = 153

const keyFileMinSize = keyFileHeaderSize + 1

// KeyFileHeader is a parsed key file, before its contents are re-expanded
// and checksum-verified against the derivation.
type KeyFileHeader struct {
	KeyLength        uint64
	CreatedAt        int64
	MasterSeed       []byte
	Checksum         []byte
	MeasurementBases []byte
}

// WriteKeyFile serializes key in wire order. The layout writer and reader
// agree on here corrects a one-byte offset gap present in an earlier
// reference implementation, whose reader skipped a byte after the version
// and so read key_length one byte later than it was written; that drift
// made a key file fail to load against its own writer. Every field here sits immediately after the one
// before it, with no reserved padding.
func WriteKeyFile(key *qcipher.QuantumKey) ([]byte, error) {
	if len(key.MasterSeed) != qcipher.MasterSeedSize {
		return nil, fmt.Errorf("container: master seed must be %d bytes", qcipher.MasterSeedSize)
	}
	if len(key.Checksum) != qcipher.ChecksumSize {
		return nil, fmt.Errorf("container: checksum must be %d bytes", qcipher.ChecksumSize)
	}

	buf := make([]byte, 0, keyFileHeaderSize+len(key.MeasurementBases))
	buf = append(buf, keyFileMagic[:]...)
	buf = append(buf, core.ContainerVersion)

	lenField := make([]byte, 8)
	binary.LittleEndian.PutUint64(lenField, key.KeyLength)
	buf = append(buf, lenField...)

	createdField := make([]byte, 8)
	binary.LittleEndian.PutUint64(createdField, uint64(key.CreatedAt))
	buf = append(buf, createdField...)

	buf = append(buf, key.MasterSeed...)
	buf = append(buf, key.Checksum...)

	basesLenField := make([]byte, 4)
	binary.LittleEndian.PutUint32(basesLenField, uint32(len(key.MeasurementBases)))
	buf = append(buf, basesLenField...)
	buf = append(buf, key.MeasurementBases...)

	return buf, nil
}

// ReadKeyFile parses a key file without re-deriving or verifying anything;
// the caller (engine.LoadKey) is responsible for re-expanding the master
// seed and comparing the recomputed checksum against the stored one.
func ReadKeyFile(data []byte) (*KeyFileHeader, error) {
	if len(data) < keyFileMinSize {
		return nil, fmt.Errorf("%w: key file smaller than minimum size", qcipher.ErrCorruptContainer)
	}
	if !bytes.Equal(data[0:4], keyFileMagic[:]) {
		return nil, fmt.Errorf("%w: bad magic", qcipher.ErrCorruptContainer)
	}
	if err := core.ValidateContainerVersion(data[4]); err != nil {
		return nil, err
	}

	keyLength := binary.LittleEndian.Uint64(data[5:13])
	createdAt := int64(binary.LittleEndian.Uint64(data[13:21]))
	masterSeed := append([]byte{}, data[21:85]...)
	checksum := append([]byte{}, data[85:149]...)
	basesLen := binary.LittleEndian.Uint32(data[149:153])

	if uint64(keyFileHeaderSize)+uint64(basesLen) > uint64(len(data)) {
		return nil, fmt.Errorf("%w: measurement bases length exceeds file size", qcipher.ErrCorruptContainer)
	}
	bases := append([]byte{}, data[keyFileHeaderSize:keyFileHeaderSize+int(basesLen)]...)

	return &KeyFileHeader{
		KeyLength:        keyLength,
		CreatedAt:        createdAt,
		MasterSeed:       masterSeed,
		Checksum:         checksum,
		MeasurementBases: bases,
	}, nil
}
