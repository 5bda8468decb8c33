// Package xorengine implements constant-time bulk XOR: the keystream
// application step shared by the OTP engine and the generic building block
// everything above it is built from.
//
// The retrieved reference implementation dispatches to hand-written
// AVX-512/AVX2/NEON assembly at runtime. No assembly sources for those
// paths travelled with this module, so dispatch here instead selects
// between differently-unrolled pure-Go loops based on golang.org/x/sys/cpu
// feature flags; every path produces bit-identical output, which is the
// property the differential tests in xor_test.go check for. See
// DESIGN.md for why this is a deliberate simplification rather than a gap.
package xorengine

import "golang.org/x/sys/cpu"

// Xor sets out[i] = a[i] ^ b[i] for every i. Panics if a, b, and out are not
// all the same length: a length mismatch is a programming error, not a
// runtime condition to recover from. The length checks here and in
// XorInPlace are the only branches on arguments in this package.
func Xor(a, b, out []byte) {
	if len(a) != len(b) || len(a) != len(out) {
		panic("xorengine: mismatched slice lengths")
	}
	if cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD {
		xorWideUnrolled(a, b, out)
		return
	}
	xorScalar(a, b, out)
}

// XorInPlace sets dst[i] ^= src[i] for every i, in increasing index order,
// writing into dst with no separate output buffer. dst and src may be the
// same slice, or src may start at or after dst in the same array; if src
// starts before dst, bytes of src already overwritten at lower indices are
// read in their updated form.
//
// Panics if len(src) < len(dst).
func XorInPlace(dst, src []byte) {
	if len(src) < len(dst) {
		panic("xorengine: src shorter than dst")
	}
	for i := range dst {
		dst[i] ^= src[i]
	}
}

// xorScalar processes 8-byte words with a byte tail.
func xorScalar(a, b, out []byte) {
	n := len(a)
	i := 0
	for ; i+8 <= n; i += 8 {
		_ = a[i+7]
		_ = b[i+7]
		out[i] = a[i] ^ b[i]
		out[i+1] = a[i+1] ^ b[i+1]
		out[i+2] = a[i+2] ^ b[i+2]
		out[i+3] = a[i+3] ^ b[i+3]
		out[i+4] = a[i+4] ^ b[i+4]
		out[i+5] = a[i+5] ^ b[i+5]
		out[i+6] = a[i+6] ^ b[i+6]
		out[i+7] = a[i+7] ^ b[i+7]
	}
	for ; i < n; i++ {
		out[i] = a[i] ^ b[i]
	}
}

// xorWideUnrolled processes 64/32/16-byte blocks before falling back to the
// same 8-byte/tail loop as xorScalar. It is pure Go throughout — there is no
// vector instruction involved, only a coarser unroll factor — and is
// selected only because a differential test confirms it is byte-identical
// to xorScalar, not because it is measurably faster without real SIMD.
func xorWideUnrolled(a, b, out []byte) {
	n := len(a)
	i := 0
	for ; i+64 <= n; i += 64 {
		for j := 0; j < 64; j++ {
			out[i+j] = a[i+j] ^ b[i+j]
		}
	}
	for ; i+32 <= n; i += 32 {
		for j := 0; j < 32; j++ {
			out[i+j] = a[i+j] ^ b[i+j]
		}
	}
	for ; i+16 <= n; i += 16 {
		for j := 0; j < 16; j++ {
			out[i+j] = a[i+j] ^ b[i+j]
		}
	}
	xorScalar(a[i:], b[i:], out[i:])
}
