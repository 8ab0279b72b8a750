package container

import (
	"testing"

	"github.com/stretchr/testify/require"

	qcipher "github.com/quantalock/qcipher-go"
)

func TestWriteReadKeyFileRoundTrip(t *testing.T) {
	key := testKey(t, 0x21)
	key.CreatedAt = 1700000000

	data, err := WriteKeyFile(key)
	require.NoError(t, err)

	hdr, err := ReadKeyFile(data)
	require.NoError(t, err)
	require.Equal(t, key.KeyLength, hdr.KeyLength)
	require.Equal(t, key.CreatedAt, hdr.CreatedAt)
	require.Equal(t, []byte(key.MasterSeed), hdr.MasterSeed)
	require.Equal(t, key.Checksum, hdr.Checksum)
	require.Equal(t, key.MeasurementBases, hdr.MeasurementBases)
}

// TestKeyFileOffsetsHaveNoGap guards the corrected wire layout: every field
// after bases_length sits at exactly keyFileHeaderSize, with no reserved
// padding between the fixed header and the variable-length bases.
func TestKeyFileOffsetsHaveNoGap(t *testing.T) {
	key := testKey(t, 0x22)
	data, err := WriteKeyFile(key)
	require.NoError(t, err)
	require.Equal(t, keyFileHeaderSize+len(key.MeasurementBases), len(data))
}

func TestReadKeyFileRejectsShortInput(t *testing.T) {
	_, err := ReadKeyFile(make([]byte, 5))
	require.ErrorIs(t, err, qcipher.ErrCorruptContainer)
}

func TestReadKeyFileRejectsBadMagic(t *testing.T) {
	key := testKey(t, 0x23)
	data, err := WriteKeyFile(key)
	require.NoError(t, err)

	data[0] ^= 0xFF
	_, err = ReadKeyFile(data)
	require.ErrorIs(t, err, qcipher.ErrCorruptContainer)
}

func TestReadKeyFileRejectsUnsupportedVersion(t *testing.T) {
	key := testKey(t, 0x24)
	data, err := WriteKeyFile(key)
	require.NoError(t, err)

	data[4] = 42
	_, err = ReadKeyFile(data)
	require.ErrorIs(t, err, qcipher.ErrCorruptContainer)
}

func TestReadKeyFileRejectsTruncatedBases(t *testing.T) {
	key := testKey(t, 0x25)
	data, err := WriteKeyFile(key)
	require.NoError(t, err)

	truncated := data[:len(data)-10]
	_, err = ReadKeyFile(truncated)
	require.ErrorIs(t, err, qcipher.ErrCorruptContainer)
}
