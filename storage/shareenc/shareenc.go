// Package shareenc implements the share-encrypted storage format: a
// passphrase-protected serialization of a string-keyed byte-value map,
// used to persist threshold shares or pad metadata at rest.
//
// Format: salt(32) || nonce(12) || AEAD-ciphertext. Key derivation is
// scrypt; the AEAD is ChaCha20-Poly1305 over a length-prefixed
// serialization of the map. This supersedes the scrypt+BLAKE3 scheme found
// in the originating Rust implementation, which spec.md's external
// interface section deliberately does not carry forward.
package shareenc

import (
	"crypto/rand"
	"encoding/binary"
	"errors"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const (
	saltSize = 32
	// KeySize is the derived AEAD key length in bytes.
	KeySize = 32
)

// Cost selects the scrypt work factor. CostInteractive (logN=14) suits
// values unlocked on a human timescale; CostArchival (logN=15) suits
// values meant to resist offline attack for longer at the expense of
// unlock latency.
type Cost int

const (
	CostInteractive Cost = 14
	CostArchival    Cost = 15
)

// ErrIntegrityFailure is returned when AEAD authentication fails on Open:
// a wrong passphrase, a corrupted ciphertext, or a flipped byte.
var ErrIntegrityFailure = errors.New("shareenc: integrity failure")

// Seal serializes entries as [k_len:u32-LE || k_bytes || v_len:u32-LE ||
// v_bytes]* in the order given, encrypts it under a scrypt-derived key, and
// returns salt || nonce || ciphertext. Map iteration order is not used
// directly; callers pass entries as an ordered slice to keep the format
// deterministic for a fixed input order.
func Seal(entries []Entry, passphrase []byte, cost Cost) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	key, err := deriveKey(passphrase, salt, cost)
	if err != nil {
		return nil, err
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	plaintext := serialize(entries)
	ciphertext := aead.Seal(nil, nonce, plaintext, nil)

	out := make([]byte, 0, saltSize+len(nonce)+len(ciphertext))
	out = append(out, salt...)
	out = append(out, nonce...)
	out = append(out, ciphertext...)
	return out, nil
}

// Open reverses Seal, returning ErrIntegrityFailure on any authentication
// failure. scrypt parameters are not varied by the ciphertext: cost must
// match what Seal used.
func Open(blob, passphrase []byte, cost Cost) ([]Entry, error) {
	nonceSize := chacha20poly1305.NonceSize
	if len(blob) < saltSize+nonceSize {
		return nil, ErrIntegrityFailure
	}
	salt := blob[:saltSize]
	nonce := blob[saltSize : saltSize+nonceSize]
	ciphertext := blob[saltSize+nonceSize:]

	key, err := deriveKey(passphrase, salt, cost)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrIntegrityFailure
	}
	return deserialize(plaintext)
}

// Entry is one key-value pair in a share-encrypted payload.
type Entry struct {
	Key   string
	Value []byte
}

func deriveKey(passphrase, salt []byte, cost Cost) ([]byte, error) {
	return scrypt.Key(passphrase, salt, 1<<uint(cost), 8, 1, KeySize)
}

func serialize(entries []Entry) []byte {
	var out []byte
	var lenBuf [4]byte
	for _, e := range entries {
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(e.Key)))
		out = append(out, lenBuf[:]...)
		out = append(out, e.Key...)
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(e.Value)))
		out = append(out, lenBuf[:]...)
		out = append(out, e.Value...)
	}
	return out
}

func deserialize(data []byte) ([]Entry, error) {
	var entries []Entry
	for len(data) > 0 {
		if len(data) < 4 {
			return nil, ErrIntegrityFailure
		}
		klen := binary.LittleEndian.Uint32(data)
		data = data[4:]
		if uint32(len(data)) < klen {
			return nil, ErrIntegrityFailure
		}
		key := string(data[:klen])
		data = data[klen:]

		if len(data) < 4 {
			return nil, ErrIntegrityFailure
		}
		vlen := binary.LittleEndian.Uint32(data)
		data = data[4:]
		if uint32(len(data)) < vlen {
			return nil, ErrIntegrityFailure
		}
		value := make([]byte, vlen)
		copy(value, data[:vlen])
		data = data[vlen:]

		entries = append(entries, Entry{Key: key, Value: value})
	}
	return entries, nil
}
