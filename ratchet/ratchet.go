// Package ratchet implements the forward-only session layer: a ratchet
// binds a monotonically increasing counter into every sealed message's
// authenticated metadata and never re-reads pad material, so replay and
// reordering are both structurally detectable.
package ratchet

import (
	"encoding/binary"
	"errors"

	"github.com/veilmesh/otgm/otp"
	"github.com/veilmesh/otgm/pad"
)

// State is the lifecycle stage of a Ratchet.
type State int

const (
	// Fresh is the initial state, before any successful seal or open.
	Fresh State = iota
	// InUse follows the first successful seal or open.
	InUse
	// Exhausted is terminal: the allocator ran out of material, or the
	// counter would have wrapped. Rotation happens at a layer above this
	// package.
	Exhausted
)

// ErrExhausted is returned once a Ratchet has entered the Exhausted state,
// whether from allocator insufficiency or counter wrap.
var ErrExhausted = errors.New("ratchet: exhausted")

// ErrTagMismatch is returned by Open on authentication failure. The
// receiver's cursor and counter are left untouched.
var ErrTagMismatch = otp.ErrTagMismatch

// Ratchet wraps a pad.Allocator and a forward-only 64-bit counter.
type Ratchet struct {
	alloc *pad.Allocator
	ctr   uint64
	state State
}

// New creates a Ratchet over alloc, starting at counter 0 in the Fresh
// state.
func New(alloc *pad.Allocator) *Ratchet {
	return &Ratchet{alloc: alloc}
}

// Counter returns the ratchet's current counter value.
func (r *Ratchet) Counter() uint64 { return r.ctr }

// State returns the ratchet's current lifecycle state.
func (r *Ratchet) State() State { return r.state }

func metadata(ctr uint64, ad []byte) []byte {
	m := make([]byte, 8+len(ad))
	binary.LittleEndian.PutUint64(m, ctr)
	copy(m[8:], ad)
	return m
}

// Seal encrypts plaintext, binding counter and ad into the authenticated
// metadata, and advances the counter on success. The block is only peeked
// while encrypting; the allocator cursor advances after the ciphertext and
// tag exist, followed only by the counter increment, so a Seal that errors
// never advances the cursor or the counter.
func (r *Ratchet) Seal(plaintext, ad []byte) (ciphertext, tag []byte, err error) {
	if r.state == Exhausted {
		return nil, nil, ErrExhausted
	}

	meta := metadata(r.ctr, ad)
	block, err := r.alloc.PeekBlock(len(plaintext))
	if err != nil {
		r.state = Exhausted
		return nil, nil, err
	}

	ciphertext, tag, err = otp.EncryptAndTag(plaintext, meta, block)
	if err != nil {
		return nil, nil, err
	}

	if _, err := r.alloc.ConsumeBlock(len(plaintext)); err != nil {
		r.state = Exhausted
		return nil, nil, err
	}
	r.advance()
	return ciphertext, tag, nil
}

// Open verifies and decrypts ciphertext against the ratchet's current
// counter and ad. On verification failure it returns ErrTagMismatch without
// advancing the allocator cursor or the counter, so a single failed open is
// idempotent-retriable. On success it consumes the block, decrypts, and
// advances the counter.
func (r *Ratchet) Open(ciphertext, ad, tag []byte) (plaintext []byte, err error) {
	if r.state == Exhausted {
		return nil, ErrExhausted
	}

	meta := metadata(r.ctr, ad)
	block, err := r.alloc.PeekBlock(len(ciphertext))
	if err != nil {
		r.state = Exhausted
		return nil, err
	}

	if _, err := otp.DecryptAndVerify(ciphertext, meta, block, tag); err != nil {
		return nil, ErrTagMismatch
	}

	// Re-borrow via ConsumeBlock now that verification has succeeded, so a
	// failed verification above never advanced the cursor.
	block, err = r.alloc.ConsumeBlock(len(ciphertext))
	if err != nil {
		r.state = Exhausted
		return nil, err
	}
	plaintext, err = otp.DecryptAndVerify(ciphertext, meta, block, tag)
	if err != nil {
		return nil, ErrTagMismatch
	}

	r.advance()
	return plaintext, nil
}

// advance moves the counter forward, or marks the ratchet Exhausted if
// doing so would wrap it back to 0. A 2^64-message pad is implausible;
// treating wrap as fatal eliminates an entire replay class rather than
// silently cycling the counter.
func (r *Ratchet) advance() {
	if r.ctr == ^uint64(0) {
		r.state = Exhausted
		return
	}
	r.ctr++
	if r.state == Fresh {
		r.state = InUse
	}
}
