// Package pad implements the monotonic pad allocator: a cursor over an
// opaque backing byte sequence that hands out non-overlapping blocks and
// can never re-issue a byte once consumed.
package pad

import (
	"errors"

	"github.com/veilmesh/otgm/internal/burn"
	"github.com/veilmesh/otgm/sip64"
)

// MacKeySize is the length, in bytes, of the MAC-key tail of every block.
const MacKeySize = sip64.Size

// ErrInsufficient is returned when a requested block does not fit in the
// remaining backing bytes.
var ErrInsufficient = errors.New("pad: insufficient backing material")

// Allocator is a monotonic cursor over a backing byte buffer. Its cursor
// only ever advances; once a byte has been returned in a consumed block, it
// is never returned again.
type Allocator struct {
	backing []byte
	pos     int
}

// NewAllocator creates an allocator that owns backing. The allocator takes
// ownership of the slice: callers must not retain or mutate it afterward.
func NewAllocator(backing []byte) *Allocator {
	return &Allocator{backing: backing}
}

// Available returns the number of unconsumed bytes remaining.
func (a *Allocator) Available() int {
	return len(a.backing) - a.pos
}

// blockLen is the total size of a block carrying payloadLen bytes of
// keystream plus the fixed-size MAC key tail.
func blockLen(payloadLen int) int {
	return payloadLen + MacKeySize
}

// PeekBlock returns a read-only view of the next payloadLen+MacKeySize
// bytes without advancing the cursor. Returns ErrInsufficient if the block
// does not fit in the remaining backing.
func (a *Allocator) PeekBlock(payloadLen int) ([]byte, error) {
	n := blockLen(payloadLen)
	if n > a.Available() {
		return nil, ErrInsufficient
	}
	return a.backing[a.pos : a.pos+n], nil
}

// ConsumeBlock returns a view of the next block and advances the cursor
// past it. The returned slice must be treated as invalidated by any later
// call to ConsumeBlock or TakeBlock: further allocator calls may reuse the
// same backing array past the advanced cursor only for the bytes they own,
// but callers must not retain a ConsumeBlock borrow across another
// mutating call.
func (a *Allocator) ConsumeBlock(payloadLen int) ([]byte, error) {
	block, err := a.PeekBlock(payloadLen)
	if err != nil {
		return nil, err
	}
	a.pos += len(block)
	return block, nil
}

// TakeBlock returns an owning copy of the next block and advances the
// cursor past it.
func (a *Allocator) TakeBlock(payloadLen int) ([]byte, error) {
	block, err := a.ConsumeBlock(payloadLen)
	if err != nil {
		return nil, err
	}
	owned := make([]byte, len(block))
	copy(owned, block)
	return owned, nil
}

// Destroy zeroizes the entire backing buffer, including any already
// consumed prefix, and parks the cursor at the end so no further blocks can
// be issued.
func (a *Allocator) Destroy() {
	burn.Bytes(a.backing)
	a.pos = len(a.backing)
}

// Rotate destroys the current backing and replaces it with fresh, resetting
// the cursor to the start of the new material.
func (a *Allocator) Rotate(fresh []byte) {
	a.Destroy()
	a.backing = fresh
	a.pos = 0
}
