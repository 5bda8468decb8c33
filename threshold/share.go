package threshold

import "github.com/veilmesh/otgm/internal/burn"

// Share is one point on a Shamir polynomial: Identifier is the non-zero
// x-coordinate, Value holds the per-byte y-coordinates (one evaluation per
// secret byte).
type Share struct {
	Identifier byte
	Value      []byte
}

// newShare validates and constructs a Share, matching the identifier/value
// constraints original_source/src/mpc/share.rs enforces at construction.
func newShare(identifier byte, value []byte) (Share, error) {
	if identifier == 0 {
		return Share{}, ErrInvalidShareIndex
	}
	if len(value) == 0 {
		return Share{}, ErrEmptyShare
	}
	return Share{Identifier: identifier, Value: value}, nil
}

// Burn zeroizes the share's value in place. Callers that no longer need a
// Share must call Burn before letting it go out of scope.
func (s Share) Burn() {
	burn.Bytes(s.Value)
}
