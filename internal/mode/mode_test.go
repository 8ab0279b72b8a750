package mode

import (
	"bytes"
	"testing"

	qcipher "github.com/quantalock/qcipher-go"
	"github.com/quantalock/qcipher-go/internal/expander"
)

func testCipher(t *testing.T, seedByte byte) *qcipher.QCipher {
	t.Helper()
	seed := make([]byte, qcipher.MasterSeedSize)
	for i := range seed {
		seed[i] = seedByte
	}
	key, err := expander.Expand(seed, 4096, 0)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	sbox, inverseSBox := expander.DeriveSBox(seed)
	return &qcipher.QCipher{
		Key:         key,
		SBox:        sbox,
		InverseSBox: inverseSBox,
		RoundKeys:   expander.DeriveRoundKeys(seed),
	}
}

func TestPadPlaintextExactMultipleUnchanged(t *testing.T) {
	p := bytes.Repeat([]byte{0x01}, qcipher.BlockSize*2)
	padded := padPlaintext(p)
	if !bytes.Equal(p, padded) {
		t.Error("expected exact-multiple plaintext to be returned unchanged")
	}
}

func TestPadPlaintextShortFinalBlock(t *testing.T) {
	p := bytes.Repeat([]byte{0x02}, 10)
	padded := padPlaintext(p)
	if len(padded) != qcipher.BlockSize {
		t.Fatalf("expected padded length %d, got %d", qcipher.BlockSize, len(padded))
	}
	padLen := qcipher.BlockSize - 10
	for i := 10; i < len(padded); i++ {
		if padded[i] != byte(padLen) {
			t.Errorf("pad byte at %d: expected %d, got %d", i, padLen, padded[i])
		}
	}
}

func TestEncryptDecryptRoundTripTinyFile(t *testing.T) {
	c := testCipher(t, 0x10)
	nonce := bytes.Repeat([]byte{0}, 32)
	iv := bytes.Repeat([]byte{0}, 32)
	plaintext := []byte("hi")

	ciphertext, err := Encrypt(c, plaintext, nonce, iv)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	recovered, err := Decrypt(c, ciphertext, nonce, iv, uint64(len(plaintext)))
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if !bytes.Equal(recovered, plaintext) {
		t.Errorf("round-trip mismatch: got %q, want %q", recovered, plaintext)
	}
}

func TestEncryptDecryptRoundTripExactBlockBoundary(t *testing.T) {
	c := testCipher(t, 0x11)
	nonce := bytes.Repeat([]byte{0x01}, 32)
	iv := bytes.Repeat([]byte{0x02}, 32)
	plaintext := bytes.Repeat([]byte{0x9F}, qcipher.BlockSize*3)

	ciphertext, err := Encrypt(c, plaintext, nonce, iv)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if len(ciphertext) != len(plaintext) {
		t.Errorf("expected no padding block for exact multiple, ciphertext len %d, plaintext len %d", len(ciphertext), len(plaintext))
	}
	recovered, err := Decrypt(c, ciphertext, nonce, iv, uint64(len(plaintext)))
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if !bytes.Equal(recovered, plaintext) {
		t.Error("round-trip mismatch at exact block boundary")
	}
}

func TestEncryptDecryptRoundTripMultiBlockLarge(t *testing.T) {
	c := testCipher(t, 0x12)
	nonce := bytes.Repeat([]byte{0x03}, 32)
	iv := bytes.Repeat([]byte{0x04}, 32)

	plaintext := make([]byte, qcipher.BlockSize*20+13)
	for i := range plaintext {
		plaintext[i] = byte(i)
	}

	ciphertext, err := Encrypt(c, plaintext, nonce, iv)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	recovered, err := Decrypt(c, ciphertext, nonce, iv, uint64(len(plaintext)))
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if !bytes.Equal(recovered, plaintext) {
		t.Error("round-trip mismatch for large multi-block plaintext exceeding the parallel-decrypt threshold")
	}
}

func TestDecryptDetectsTamperedCiphertext(t *testing.T) {
	c := testCipher(t, 0x13)
	nonce := bytes.Repeat([]byte{0x05}, 32)
	iv := bytes.Repeat([]byte{0x06}, 32)
	plaintext := bytes.Repeat([]byte{0x88}, qcipher.BlockSize*4)

	ciphertext, err := Encrypt(c, plaintext, nonce, iv)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	tampered := append([]byte(nil), ciphertext...)
	tampered[len(tampered)/2] ^= 0xFF

	recovered, err := Decrypt(c, tampered, nonce, iv, uint64(len(plaintext)))
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if bytes.Equal(recovered, plaintext) {
		t.Error("tampering a middle byte of ciphertext did not change the recovered plaintext")
	}
}

func TestEncryptDeterministic(t *testing.T) {
	c := testCipher(t, 0x14)
	nonce := bytes.Repeat([]byte{0x07}, 32)
	iv := bytes.Repeat([]byte{0x08}, 32)
	plaintext := bytes.Repeat([]byte{0x33}, qcipher.BlockSize*2)

	c1, err := Encrypt(c, plaintext, nonce, iv)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	c2, err := Encrypt(c, plaintext, nonce, iv)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if !bytes.Equal(c1, c2) {
		t.Error("Encrypt not deterministic given identical nonce and iv")
	}
}
