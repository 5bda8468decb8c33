// Package logging provides the module's structured logger: a thin wrapper
// over zap, defaulting to a no-op logger so the core never forces log
// configuration on an embedding application, in the style the pack's
// arena-cache library uses for its own optional zap.Logger knob.
//
// Nothing in this package ever logs key material, pad bytes, or share
// values; call sites pass only identifiers, counts, and error kinds.
package logging

import "go.uber.org/zap"

// Logger is the module-wide structured logger interface. It is satisfied
// directly by *zap.Logger.
type Logger = *zap.Logger

// Nop returns a logger that discards everything, the default for any
// component that isn't given one explicitly.
func Nop() Logger {
	return zap.NewNop()
}

// NewDevelopment returns a human-readable logger suitable for local
// development and the module's own example/bench tests.
func NewDevelopment() (Logger, error) {
	return zap.NewDevelopment()
}

// AllocatorExhausted logs a ratchet/allocator exhaustion event.
func AllocatorExhausted(l Logger, padID string) {
	l.Warn("pad allocator exhausted", zap.String("pad_id", padID))
}

// RatchetStateChanged logs a ratchet lifecycle transition.
func RatchetStateChanged(l Logger, padID string, from, to string) {
	l.Info("ratchet state transition", zap.String("pad_id", padID), zap.String("from", from), zap.String("to", to))
}

// PadRotated logs a pad rotation, identified only by id and counts.
func PadRotated(l Logger, padID string, previousUsed, newTotal uint64) {
	l.Info("pad rotated", zap.String("pad_id", padID), zap.Uint64("previous_used", previousUsed), zap.Uint64("new_total", newTotal))
}
