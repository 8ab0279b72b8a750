package utils

import (
	"bytes"
	"testing"
)

func TestSecureRandomBytesLength(t *testing.T) {
	b, err := SecureRandomBytes(32)
	if err != nil {
		t.Fatalf("SecureRandomBytes failed: %v", err)
	}
	if len(b) != 32 {
		t.Errorf("expected 32 bytes, got %d", len(b))
	}
}

func TestSecureRandomBytesVaries(t *testing.T) {
	a, err := SecureRandomBytes(32)
	if err != nil {
		t.Fatalf("SecureRandomBytes failed: %v", err)
	}
	b, err := SecureRandomBytes(32)
	if err != nil {
		t.Fatalf("SecureRandomBytes failed: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Error("two independent draws of 32 random bytes were equal")
	}
}

func TestConstantTimeEqual(t *testing.T) {
	a := []byte{1, 2, 3, 4}
	b := []byte{1, 2, 3, 4}
	c := []byte{1, 2, 3, 5}

	if !ConstantTimeEqual(a, b) {
		t.Error("expected equal slices to compare equal")
	}
	if ConstantTimeEqual(a, c) {
		t.Error("expected differing slices to compare unequal")
	}
	if ConstantTimeEqual(a, []byte{1, 2, 3}) {
		t.Error("expected differing lengths to compare unequal")
	}
	if !ConstantTimeEqual(nil, []byte{}) {
		t.Error("expected two empty slices to compare equal")
	}
}

func TestZeroize(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}
	Zeroize(b)
	for i, v := range b {
		if v != 0 {
			t.Errorf("byte %d not zeroed: %d", i, v)
		}
	}
}
