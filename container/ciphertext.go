// Package container implements qcipher's two wire formats: the ciphertext
// container written by file encryption and the key file written by key
// generation. Both are pure encode/decode layers, with no key derivation, no
// randomness, and no cipher operations, so they can be tested independently
// of the transform they carry.
package container

import (
	"bytes"
	"encoding/binary"
	"fmt"

	qcipher "github.com/quantalock/qcipher-go"
	"github.com/quantalock/qcipher-go/internal/core"
	"github.com/quantalock/qcipher-go/internal/utils"
)

// ciphertextMagic spells "QCRYPT" in ASCII.
var ciphertextMagic = [6]byte{0x51, 0x43, 0x52, 0x59, 0x50, 0x54}

const (
	ciphertextHeaderSize = 6 + 1 + 32 + 32 + 32 + 32 + 8 // magic,version,fingerprint,nonce,salt,iv,size = 143
	ciphertextMinSize    = ciphertextHeaderSize + 64      // + auth tag
)

// Ciphertext is a parsed ciphertext container.
type Ciphertext struct {
	Fingerprint  []byte
	Nonce        []byte
	Salt         []byte
	IV           []byte
	OriginalSize uint64
	Body         []byte
	AuthTag      []byte
}

// Fingerprint identifies a master seed by the first 32 bytes of its
// SHA-512 digest. Two keys with the same fingerprint are, for all but an
// astronomically unlucky collision, the same key.
func Fingerprint(masterSeed []byte) []byte {
	full := utils.Sha512(masterSeed)
	fp := make([]byte, qcipher.FingerprintSize)
	copy(fp, full[:qcipher.FingerprintSize])
	return fp
}

// WriteCiphertext assembles a ciphertext container: header fields in wire
// order, the ciphertext body, then a trailing auth tag computed over the
// body and the key's checksum.
func WriteCiphertext(key *qcipher.QuantumKey, nonce, salt, iv []byte, originalSize uint64, ciphertext []byte) ([]byte, error) {
	if len(nonce) != qcipher.NonceSize {
		return nil, fmt.Errorf("container: nonce must be %d bytes", qcipher.NonceSize)
	}
	if len(salt) != qcipher.SaltSize {
		return nil, fmt.Errorf("container: salt must be %d bytes", qcipher.SaltSize)
	}
	if len(iv) != qcipher.IVSize {
		return nil, fmt.Errorf("container: iv must be %d bytes", qcipher.IVSize)
	}

	buf := make([]byte, 0, ciphertextHeaderSize+len(ciphertext)+qcipher.ChecksumSize)
	buf = append(buf, ciphertextMagic[:]...)
	buf = append(buf, core.ContainerVersion)
	buf = append(buf, Fingerprint(key.MasterSeed)...)
	buf = append(buf, nonce...)
	buf = append(buf, salt...)
	buf = append(buf, iv...)

	sizeField := make([]byte, 8)
	binary.LittleEndian.PutUint64(sizeField, originalSize)
	buf = append(buf, sizeField...)
	buf = append(buf, ciphertext...)

	tag := authTag(ciphertext, key.Checksum)
	buf = append(buf, tag...)
	return buf, nil
}

// ReadCiphertext validates and parses a ciphertext container against key,
// running the checks in the order that keeps the ambiguity between "wrong
// key" and "corrupted or tampered file" resolvable: structural checks first
// (size, magic, version), then the key-dependent fingerprint check, and
// only last the auth tag, which requires both a genuine key and an intact
// body to pass.
func ReadCiphertext(data []byte, key *qcipher.QuantumKey) (*Ciphertext, error) {
	if len(data) < ciphertextMinSize {
		return nil, fmt.Errorf("%w: container smaller than minimum size", qcipher.ErrCorruptContainer)
	}
	if !bytes.Equal(data[0:6], ciphertextMagic[:]) {
		return nil, fmt.Errorf("%w: bad magic", qcipher.ErrCorruptContainer)
	}
	version := data[6]
	if err := core.ValidateContainerVersion(version); err != nil {
		return nil, err
	}

	fingerprint := data[7:39]
	nonce := data[39:71]
	salt := data[71:103]
	iv := data[103:135]
	originalSize := binary.LittleEndian.Uint64(data[135:143])
	if originalSize > uint64(len(data))*2 {
		return nil, fmt.Errorf("%w: implausible original size field", qcipher.ErrCorruptContainer)
	}

	body := data[ciphertextHeaderSize : len(data)-qcipher.ChecksumSize]
	tag := data[len(data)-qcipher.ChecksumSize:]

	if !utils.ConstantTimeEqual(fingerprint, Fingerprint(key.MasterSeed)) {
		return nil, qcipher.ErrWrongKey
	}
	if !utils.ConstantTimeEqual(tag, authTag(body, key.Checksum)) {
		return nil, qcipher.ErrIntegrityFailure
	}

	return &Ciphertext{
		Fingerprint:  append([]byte{}, fingerprint...),
		Nonce:        append([]byte{}, nonce...),
		Salt:         append([]byte{}, salt...),
		IV:           append([]byte{}, iv...),
		OriginalSize: originalSize,
		Body:         append([]byte{}, body...),
		AuthTag:      append([]byte{}, tag...),
	}, nil
}

func authTag(ciphertext, checksum []byte) []byte {
	input := make([]byte, 0, len(ciphertext)+len(checksum))
	input = append(input, ciphertext...)
	input = append(input, checksum...)
	return utils.Sha512(input)
}
