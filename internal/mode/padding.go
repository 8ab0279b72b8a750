// Package mode implements qcipher's CBC-style chaining mode: final-block
// padding on encrypt, IV/previous-ciphertext chaining in both directions,
// and length-preserving truncation on decrypt.
package mode

import qcipher "github.com/quantalock/qcipher-go"

// padPlaintext pads plaintext so its length is a multiple of BlockSize. Only
// the final block is padded, and only when it is short: a plaintext whose
// length is already a multiple of BlockSize is returned unchanged, with no
// extra padding block appended. The pad byte value is the number of pad
// bytes added (PKCS7-style, but confined to the one final short block).
func padPlaintext(plaintext []byte) []byte {
	remainder := len(plaintext) % qcipher.BlockSize
	if remainder == 0 {
		return plaintext
	}
	padLen := qcipher.BlockSize - remainder
	padded := make([]byte, len(plaintext)+padLen)
	copy(padded, plaintext)
	for i := len(plaintext); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}
