package threshold

import "errors"

// The error kinds here are disjoint and fully enumerate the failure modes
// of Split, Reconstruct, Refresh, and Add.
var (
	ErrInvalidShareIndex   = errors.New("threshold: invalid share index")
	ErrEmptyShare          = errors.New("threshold: empty share or secret")
	ErrInvalidThreshold    = errors.New("threshold: invalid threshold")
	ErrInsufficientShares  = errors.New("threshold: insufficient shares")
	ErrDuplicateShareIndex = errors.New("threshold: duplicate share index")
	ErrShareLengthMismatch = errors.New("threshold: share length mismatch")
	ErrRngFailure          = errors.New("threshold: entropy source failure")
)
