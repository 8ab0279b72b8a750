package engine

import (
	qcipher "github.com/quantalock/qcipher-go"
	"github.com/quantalock/qcipher-go/container"
	"github.com/quantalock/qcipher-go/internal/mode"
	"github.com/quantalock/qcipher-go/internal/utils"
)

// EncryptBytes encrypts plaintext under c and wraps the result in a
// ciphertext container, generating fresh nonce, salt, and IV values from
// the CSPRNG. Salt is reserved wire space carried for forward
// compatibility with a future key-derivation scheme; this implementation
// does not consume it.
func EncryptBytes(c *qcipher.QCipher, plaintext []byte) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, qcipher.ErrInvalidInput
	}

	nonce, err := utils.SecureRandomBytes(qcipher.NonceSize)
	if err != nil {
		return nil, err
	}
	salt, err := utils.SecureRandomBytes(qcipher.SaltSize)
	if err != nil {
		return nil, err
	}
	iv, err := utils.SecureRandomBytes(qcipher.IVSize)
	if err != nil {
		return nil, err
	}

	return EncryptBytesDeterministic(c, plaintext, nonce, salt, iv)
}

// EncryptBytesDeterministic runs the same encryption as EncryptBytes with
// caller-supplied nonce/salt/iv instead of fresh randomness. Production
// callers should use EncryptBytes; this exists for reproducible test
// vectors where the wire bytes must match across runs.
func EncryptBytesDeterministic(c *qcipher.QCipher, plaintext, nonce, salt, iv []byte) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, qcipher.ErrInvalidInput
	}

	ciphertext, err := mode.Encrypt(c, plaintext, nonce, iv)
	if err != nil {
		return nil, err
	}
	return container.WriteCiphertext(c.Key, nonce, salt, iv, uint64(len(plaintext)), ciphertext)
}

// DecryptBytes unwraps a ciphertext container and decrypts its body under
// c, failing with ErrWrongKey or ErrIntegrityFailure before ever touching
// the block transform if the container doesn't check out.
func DecryptBytes(c *qcipher.QCipher, containerBytes []byte) ([]byte, error) {
	parsed, err := container.ReadCiphertext(containerBytes, c.Key)
	if err != nil {
		return nil, err
	}
	return mode.Decrypt(c, parsed.Body, parsed.Nonce, parsed.IV, parsed.OriginalSize)
}
