package threshold

import (
	"github.com/veilmesh/otgm/gf256"
	"github.com/veilmesh/otgm/internal/burn"
)

// Reconstruct recovers the secret from shares, given the threshold k the
// secret was split with. It fails fast with ErrInsufficientShares if fewer
// than k shares are supplied, without reading any share's value; it then
// validates that identifiers are non-zero, unique, and that every share
// carries the same value length before computing the Lagrange
// interpolation at x=0.
func Reconstruct(shares []Share, k int) ([]byte, error) {
	if len(shares) < k {
		return nil, ErrInsufficientShares
	}

	var seen [256]bool
	for _, s := range shares {
		if s.Identifier == 0 {
			return nil, ErrInvalidShareIndex
		}
		if seen[s.Identifier] {
			return nil, ErrDuplicateShareIndex
		}
		seen[s.Identifier] = true
	}

	valueLen := len(shares[0].Value)
	if valueLen == 0 {
		return nil, ErrEmptyShare
	}
	for _, s := range shares {
		if len(s.Value) != valueLen {
			return nil, ErrShareLengthMismatch
		}
	}

	lambdas := lagrangeBasisAtZero(shares)
	defer burn.Bytes(lambdas)

	secret := make([]byte, valueLen)
	for p := 0; p < valueLen; p++ {
		var acc byte
		for j, s := range shares {
			acc = gf256.Add(acc, gf256.Mul(lambdas[j], s.Value[p]))
		}
		secret[p] = acc
	}
	return secret, nil
}

// lagrangeBasisAtZero computes λⱼ = ∏_{m≠j} xₘ/(xₘ+xⱼ) for each share j, the
// coefficient by which share j's value contributes to the secret at x=0.
// Subtraction is addition in GF(2^8), so xₘ-xⱼ is written xₘ+xⱼ throughout.
func lagrangeBasisAtZero(shares []Share) []byte {
	lambdas := make([]byte, len(shares))
	for j := range shares {
		xj := shares[j].Identifier
		basis := byte(1)
		for m := range shares {
			if m == j {
				continue
			}
			xm := shares[m].Identifier
			denom := gf256.Add(xm, xj)
			term, _ := gf256.Div(xm, denom) // denom != 0: identifiers are unique and non-zero
			basis = gf256.Mul(basis, term)
		}
		lambdas[j] = basis
	}
	return lambdas
}
