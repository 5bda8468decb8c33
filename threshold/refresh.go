package threshold

import (
	"github.com/veilmesh/otgm/entropy"
	"github.com/veilmesh/otgm/gf256"
	"github.com/veilmesh/otgm/internal/burn"
)

// Refresh proactively re-randomizes shares in place, leaving the secret
// they reconstruct to unchanged while making every pre-refresh share
// useless when combined with a post-refresh share. For each byte position
// it samples a degree-(k-1) polynomial with a zero intercept and adds that
// polynomial's value at each share's identifier into the share.
func Refresh(shares []Share, k int, src entropy.Source) error {
	if len(shares) == 0 {
		return ErrEmptyShare
	}
	if k < 2 {
		return ErrInvalidThreshold
	}
	valueLen := len(shares[0].Value)
	if valueLen == 0 {
		return ErrEmptyShare
	}
	for _, s := range shares {
		if len(s.Value) != valueLen {
			return ErrShareLengthMismatch
		}
	}

	coeffs := make([]byte, k)
	defer burn.Bytes(coeffs)

	for p := 0; p < valueLen; p++ {
		coeffs[0] = 0
		if k > 1 {
			if err := src.Fill(coeffs[1:]); err != nil {
				return ErrRngFailure
			}
		}
		for i := range shares {
			delta := gf256.Eval(coeffs, shares[i].Identifier)
			shares[i].Value[p] = gf256.Add(shares[i].Value[p], delta)
		}
	}
	return nil
}
