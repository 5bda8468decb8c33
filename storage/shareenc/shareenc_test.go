package shareenc

import (
	"bytes"
	"testing"
)

func TestSealOpenRoundTrip(t *testing.T) {
	entries := []Entry{
		{Key: "share-1", Value: []byte{0x01, 0x02, 0x03}},
		{Key: "share-2", Value: []byte{0xAA, 0xBB}},
	}
	pass := []byte("correct horse battery staple")

	blob, err := Seal(entries, pass, CostInteractive)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Open(blob, pass, CostInteractive)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(entries) {
		t.Fatalf("got %d entries, want %d", len(got), len(entries))
	}
	for i := range entries {
		if got[i].Key != entries[i].Key || !bytes.Equal(got[i].Value, entries[i].Value) {
			t.Fatalf("entry %d = %+v, want %+v", i, got[i], entries[i])
		}
	}
}

func TestOpenFailsWithWrongPassphrase(t *testing.T) {
	entries := []Entry{{Key: "k", Value: []byte{1, 2, 3}}}
	blob, err := Seal(entries, []byte("right"), CostInteractive)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Open(blob, []byte("wrong"), CostInteractive); err != ErrIntegrityFailure {
		t.Fatalf("got %v, want ErrIntegrityFailure", err)
	}
}

func TestOpenFailsOnFlippedByte(t *testing.T) {
	entries := []Entry{{Key: "k", Value: []byte{1, 2, 3}}}
	pass := []byte("passphrase")
	blob, err := Seal(entries, pass, CostInteractive)
	if err != nil {
		t.Fatal(err)
	}
	blob[len(blob)-1] ^= 0xFF
	if _, err := Open(blob, pass, CostInteractive); err != ErrIntegrityFailure {
		t.Fatalf("got %v, want ErrIntegrityFailure", err)
	}
}

func TestFormatLayout(t *testing.T) {
	entries := []Entry{{Key: "k", Value: []byte{1}}}
	blob, err := Seal(entries, []byte("p"), CostInteractive)
	if err != nil {
		t.Fatal(err)
	}
	if len(blob) < 32+12+16 { // salt + nonce + at least the AEAD tag
		t.Fatalf("blob too short: %d bytes", len(blob))
	}
}
