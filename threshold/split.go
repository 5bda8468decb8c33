package threshold

import (
	"github.com/veilmesh/otgm/entropy"
	"github.com/veilmesh/otgm/gf256"
	"github.com/veilmesh/otgm/internal/burn"
)

// Split divides secret into n shares, any k of which suffice to
// reconstruct it, sampling random polynomial coefficients from src.
//
// For each byte of secret, Split builds an independent degree-(k-1)
// polynomial with that byte as its constant term and k-1 random
// coefficients, then evaluates it at x = 1, …, n to produce that byte's
// contribution to each of the n shares.
func Split(secret []byte, k, n int, src entropy.Source) ([]Share, error) {
	if len(secret) == 0 {
		return nil, ErrEmptyShare
	}
	if k < 2 || k > n || n > 255 {
		return nil, ErrInvalidThreshold
	}

	shares := make([]Share, n)
	for i := range shares {
		shares[i] = Share{Identifier: byte(i + 1), Value: make([]byte, len(secret))}
	}

	coeffs := make([]byte, k)
	defer burn.Bytes(coeffs)

	for p, b := range secret {
		coeffs[0] = b
		if k > 1 {
			if err := src.Fill(coeffs[1:]); err != nil {
				for _, s := range shares {
					s.Burn()
				}
				return nil, ErrRngFailure
			}
		}
		for i := range shares {
			shares[i].Value[p] = gf256.Eval(coeffs, shares[i].Identifier)
		}
	}

	return shares, nil
}
