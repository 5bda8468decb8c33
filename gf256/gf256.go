// Package gf256 implements branchless arithmetic over GF(2^8) under the
// Rijndael reduction polynomial x^8+x^4+x^3+x+1 (0x1B).
//
// Every operation here is written to be free of secret-dependent branches
// and secret-indexed memory accesses: multiplication is a bit-serial
// shift-and-mask loop, and inverse is a fixed addition chain. The package
// provides no table-driven multiply.
package gf256

// poly is the low byte of the reduction polynomial x^8+x^4+x^3+x+1.
const poly = 0x1B

// Add returns a+b in GF(256), which is XOR: the field has characteristic 2,
// so addition and subtraction coincide.
func Add(a, b uint8) uint8 {
	return a ^ b
}

// Mul returns a*b in GF(256) via an 8-step bit-serial shift-and-mask
// multiply with no data-dependent branches and no table lookups.
func Mul(a, b uint8) uint8 {
	var acc uint8
	for i := 0; i < 8; i++ {
		mask := uint8(0) - (b & 1)
		acc ^= a & mask

		hiMask := uint8(0) - (a >> 7)
		a = (a << 1) ^ (poly & hiMask)
		b >>= 1
	}
	return acc
}

// Inv returns the multiplicative inverse of a, or 0 if a is 0. The inverse
// is computed as a^254 (since a^255 = 1 for all nonzero a) via a fixed
// square-and-multiply addition chain; the a==0 case is folded in by masking
// the chain's result rather than by branching on a==0, so the chain always
// runs to completion regardless of a.
func Inv(a uint8) uint8 {
	// a^254 = a^(2+4+8+16+32+64+128) built from repeated squaring:
	// a2 = a^2, a4=a2^2(=a^4), ... accumulate via multiplication.
	a2 := Mul(a, a)
	a3 := Mul(a2, a)
	a6 := Mul(a3, a3)
	a12 := Mul(a6, a6)
	a15 := Mul(a12, a3)
	a30 := Mul(a15, a15)
	a60 := Mul(a30, a30)
	a63 := Mul(a60, a3)
	a126 := Mul(a63, a63)
	a252 := Mul(a126, a126)
	a254 := Mul(a252, a2)

	// nz has its high bit set iff a != 0 (the standard a | -a trick); the
	// arithmetic shift turns that into an all-ones or all-zero mask with no
	// branch on a, so the a==0 case is folded into the chain's result rather
	// than deciding whether the chain runs.
	nz := a | (0 - a)
	mask := uint8(int8(nz) >> 7)
	return a254 & mask
}

// Div returns a/b and ok=true, or ok=false if b is 0.
func Div(a, b uint8) (result uint8, ok bool) {
	if b == 0 {
		return 0, false
	}
	return Mul(a, Inv(b)), true
}

// Eval evaluates the polynomial with coefficients coeffs (coeffs[0] is the
// constant term) at the point x using Horner's method. An empty coefficient
// list evaluates to 0.
func Eval(coeffs []uint8, x uint8) uint8 {
	var out uint8
	for i := len(coeffs) - 1; i >= 0; i-- {
		out = Add(Mul(out, x), coeffs[i])
	}
	return out
}
