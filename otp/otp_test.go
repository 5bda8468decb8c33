package otp

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func randBlock(n int) []byte {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return b
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	plaintext := []byte("HELLO WORLD!!!!!")
	metadata := []byte("ad")
	block := randBlock(len(plaintext) + 64)

	ct, tag, err := EncryptAndTag(plaintext, metadata, block)
	if err != nil {
		t.Fatal(err)
	}
	pt, err := DecryptAndVerify(ct, metadata, block, tag)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pt, plaintext) {
		t.Fatalf("decrypted %q, want %q", pt, plaintext)
	}
}

func TestTagMismatchDoesNotDecrypt(t *testing.T) {
	plaintext := []byte("secret message")
	metadata := []byte("ad")
	block := randBlock(len(plaintext) + 64)

	ct, tag, err := EncryptAndTag(plaintext, metadata, block)
	if err != nil {
		t.Fatal(err)
	}
	tag[0] ^= 0xFF
	if _, err := DecryptAndVerify(ct, metadata, block, tag); err != ErrTagMismatch {
		t.Fatalf("got %v, want ErrTagMismatch", err)
	}
}

func TestEncryptFailsOnShortBlock(t *testing.T) {
	plaintext := make([]byte, 32)
	block := randBlock(64 + 16) // 16 bytes short of 32+64
	if _, _, err := EncryptAndTag(plaintext, nil, block); err != ErrBlockTooSmall {
		t.Fatalf("got %v, want ErrBlockTooSmall", err)
	}
}

func TestDecryptFailsOnShortBlock(t *testing.T) {
	ciphertext := make([]byte, 32)
	tag := make([]byte, 64)
	block := randBlock(64 + 16)
	if _, err := DecryptAndVerify(ciphertext, nil, block, tag); err != ErrBlockTooSmall {
		t.Fatalf("got %v, want ErrBlockTooSmall", err)
	}
}
