package threshold

import "github.com/veilmesh/otgm/gf256"

// Add homomorphically combines two shares of the same identifier into a
// share of the sum of their secrets: reconstructing a full set of Add'd
// shares yields S1 ⊕ S2 in GF(256), where S1 and S2 are the secrets the
// inputs were split from.
func Add(s1, s2 Share) (Share, error) {
	if s1.Identifier != s2.Identifier {
		return Share{}, ErrInvalidShareIndex
	}
	if len(s1.Value) != len(s2.Value) {
		return Share{}, ErrShareLengthMismatch
	}
	out := make([]byte, len(s1.Value))
	for i := range out {
		out[i] = gf256.Add(s1.Value[i], s2.Value[i])
	}
	return Share{Identifier: s1.Identifier, Value: out}, nil
}
