package xorengine

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestXorRoundTrip(t *testing.T) {
	p := []byte("the quick brown fox jumps over the lazy dog, 1234567890")
	k := make([]byte, len(p))
	_, _ = rand.Read(k)

	ct := make([]byte, len(p))
	Xor(p, k, ct)
	pt := make([]byte, len(p))
	Xor(ct, k, pt)

	if !bytes.Equal(p, pt) {
		t.Fatal("xor(xor(p,k),k) != p")
	}
}

func TestXorPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	Xor([]byte{1, 2}, []byte{1, 2, 3}, []byte{1, 2})
}

func TestXorInPlaceAliased(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}
	orig := bytes.Clone(buf)
	key := []byte{0xFF, 0xEE, 0xDD, 0xCC, 0xBB, 0xAA, 0x99, 0x88, 0x77}

	XorInPlace(buf, key)
	want := make([]byte, len(orig))
	Xor(orig, key, want)
	if !bytes.Equal(buf, want) {
		t.Fatalf("XorInPlace = %x, want %x", buf, want)
	}
}

func TestScalarAndWideAgree(t *testing.T) {
	sizes := []int{0, 1, 7, 8, 15, 16, 31, 32, 63, 64, 65, 127, 200, 1000}
	for _, n := range sizes {
		a := make([]byte, n)
		b := make([]byte, n)
		_, _ = rand.Read(a)
		_, _ = rand.Read(b)

		wantOut := make([]byte, n)
		xorScalar(a, b, wantOut)

		gotOut := make([]byte, n)
		xorWideUnrolled(a, b, gotOut)

		if !bytes.Equal(wantOut, gotOut) {
			t.Fatalf("size %d: scalar and wide-unrolled disagree", n)
		}
	}
}
