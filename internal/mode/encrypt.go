package mode

import (
	"fmt"

	qcipher "github.com/quantalock/qcipher-go"
	"github.com/quantalock/qcipher-go/internal/block"
)

// Encrypt pads plaintext, CBC-chains it against iv (for the first block)
// and the previously produced ciphertext block (for every subsequent
// block), and encrypts each resulting 64-byte block with the round
// transform. CBC chaining forces this to run sequentially within one file;
// independent files may still run concurrently against the same immutable
// QCipher.
func Encrypt(c *qcipher.QCipher, plaintext []byte, nonce []byte, iv []byte) ([]byte, error) {
	if len(iv) != qcipher.IVSize {
		return nil, fmt.Errorf("mode: iv must be %d bytes", qcipher.IVSize)
	}

	padded := padPlaintext(plaintext)
	numBlocks := len(padded) / qcipher.BlockSize
	ciphertext := make([]byte, 0, len(padded))

	var prevCipher []byte
	for i := 0; i < numBlocks; i++ {
		blk := append([]byte(nil), padded[i*qcipher.BlockSize:(i+1)*qcipher.BlockSize]...)
		if i == 0 {
			for j := range blk {
				blk[j] ^= iv[j%qcipher.IVSize]
			}
		} else {
			for j := range blk {
				blk[j] ^= prevCipher[j]
			}
		}

		enc, err := block.EncryptBlock(c, blk, uint64(i), nonce)
		if err != nil {
			return nil, err
		}
		ciphertext = append(ciphertext, enc...)
		prevCipher = enc
	}
	return ciphertext, nil
}
