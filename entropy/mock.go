package entropy

import "github.com/veilmesh/otgm/hazmat/turboshake"

// Counter is a deterministic Source that yields consecutive bytes starting
// at Start (wrapping mod 256), matching the test vectors used throughout
// this module's threshold-sharing tests (e.g. 0x10, 0x11, 0x12, …).
type Counter struct {
	Start byte
	next  byte
	init  bool
}

// Fill writes consecutive bytes into out.
func (c *Counter) Fill(out []byte) error {
	if !c.init {
		c.next = c.Start
		c.init = true
	}
	for i := range out {
		out[i] = c.next
		c.next++
	}
	return nil
}

// EntropyEstimate reports 0: a counter carries no entropy and must never be
// used outside tests.
func (c *Counter) EntropyEstimate() float64 { return 0 }

// DRBG is a deterministic Source for reproducible property tests over
// inputs larger than a literal counter vector usefully covers. It is a thin
// wrapper over TurboSHAKE128, seeded by a customization string rather than
// by a real entropy source.
type DRBG struct {
	h turboshake.Hasher
	// customization identifies this DRBG instance's domain, absorbed once on
	// first use.
	customization string
	started       bool
}

// NewDRBG creates a DRBG domain-separated by customization.
func NewDRBG(customization string) *DRBG {
	return &DRBG{customization: customization}
}

// Fill squeezes len(out) deterministic bytes.
func (d *DRBG) Fill(out []byte) error {
	if !d.started {
		d.h = turboshake.New(0x1F)
		_, _ = d.h.Write([]byte(d.customization))
		d.started = true
	}
	_, err := d.h.Read(out)
	return err
}

// EntropyEstimate reports 0: a DRBG carries no real entropy and must never
// be used outside tests.
func (d *DRBG) EntropyEstimate() float64 { return 0 }
