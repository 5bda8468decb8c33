// Package sip64 implements the SIP-64 polynomial MAC: 64 parallel Horner
// evaluations over GF(256), one per byte of a 64-byte key, each key byte
// serving as that lane's evaluation point.
package sip64

import "github.com/veilmesh/otgm/gf256"

// Size is the fixed length, in bytes, of a SIP-64 key and tag.
const Size = 64

// Tag computes the 64-byte SIP-64 authenticator over metadata and
// ciphertext under macKey.
//
// The Horner fold processes metadata first, then ciphertext, each traversed
// from its last byte to its first. Both sides of a seal/open pair MUST
// agree on this direction; it is part of the wire contract, not an
// implementation detail.
//
// Panics if len(macKey) != Size: a short or long key is a programming
// error, not a runtime condition to recover from.
func Tag(ciphertext, metadata, macKey []byte) []byte {
	if len(macKey) != Size {
		panic("sip64: mac key must be exactly 64 bytes")
	}

	var acc [Size]uint8
	foldReversed(&acc, metadata, macKey)
	foldReversed(&acc, ciphertext, macKey)

	out := make([]byte, Size)
	copy(out, acc[:])
	return out
}

// foldReversed updates each lane of acc with data traversed from its last
// byte to its first: accᵢ ← accᵢ·xᵢ + byte, for each lane's evaluation
// point xᵢ = macKey[i].
func foldReversed(acc *[Size]uint8, data, macKey []byte) {
	for idx := len(data) - 1; idx >= 0; idx-- {
		b := data[idx]
		for lane := 0; lane < Size; lane++ {
			acc[lane] = gf256.Add(gf256.Mul(acc[lane], macKey[lane]), b)
		}
	}
}

// Verify recomputes the SIP-64 tag over ciphertext and metadata under
// macKey and compares it to tag in constant time: every byte of both
// buffers is compared via OR-accumulated XOR, with no early exit on the
// first difference, so the result never reveals which byte (or whether
// any byte) mismatched through timing.
func Verify(ciphertext, metadata, macKey, tag []byte) bool {
	if len(tag) != Size {
		return false
	}
	computed := Tag(ciphertext, metadata, macKey)
	var diff byte
	for i := 0; i < Size; i++ {
		diff |= computed[i] ^ tag[i]
	}
	return diff == 0
}
