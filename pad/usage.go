package pad

import "errors"

// ErrExhausted is returned by UsageTracker.Consume when the requested
// amount would exceed total capacity, including on unsigned overflow of
// used+amount.
var ErrExhausted = errors.New("pad: usage tracker exhausted")

// UsageTracker parallels an Allocator's monotonic cursor with a pair of
// counters: total capacity and bytes used so far. used only ever increases,
// except through an explicit Reset performed alongside a rotation.
type UsageTracker struct {
	total uint64
	used  uint64
}

// NewUsageTracker creates a tracker with the given total capacity and zero
// bytes used.
func NewUsageTracker(total uint64) *UsageTracker {
	return &UsageTracker{total: total}
}

// Total returns the tracker's total capacity.
func (u *UsageTracker) Total() uint64 { return u.total }

// Used returns the bytes consumed so far.
func (u *UsageTracker) Used() uint64 { return u.used }

// Remaining returns total-used.
func (u *UsageTracker) Remaining() uint64 { return u.total - u.used }

// Consume records the use of amount bytes, failing with ErrExhausted
// without modifying state if amount exceeds the remaining capacity or if
// used+amount overflows uint64.
func (u *UsageTracker) Consume(amount uint64) error {
	next := u.used + amount
	if next < u.used || next > u.total {
		return ErrExhausted
	}
	u.used = next
	return nil
}

// Reset sets total capacity to total and used back to zero, for use
// alongside an Allocator.Rotate call.
func (u *UsageTracker) Reset(total uint64) {
	u.total = total
	u.used = 0
}
