package entropy

import "errors"

// ErrAllSourcesFailed is returned when every source in an Aggregator failed
// to fill its contribution across all retries.
var ErrAllSourcesFailed = errors.New("entropy: all sources failed")

// maxRetries bounds how many times Aggregator.Fill retries a source that
// failed, mirroring original_source/src/entropy/aggregator.rs.
const maxRetries = 5

// Aggregator combines multiple sources by XORing their contributions
// together. A source that fails on a given attempt contributes nothing
// (its buffer stays zeroed) rather than aborting the whole fill; only when
// every source has failed on every retry does Fill report an error, so a
// single flaky source never denies service while any other source works.
type Aggregator struct {
	Sources []Source
}

// Fill populates out with the XOR of every source's contribution.
func (a *Aggregator) Fill(out []byte) error {
	for i := range out {
		out[i] = 0
	}
	if len(a.Sources) == 0 {
		return ErrAllSourcesFailed
	}

	scratch := make([]byte, len(out))
	anySucceeded := false
	for _, src := range a.Sources {
		var err error
		for attempt := 0; attempt < maxRetries; attempt++ {
			if err = src.Fill(scratch); err == nil {
				break
			}
		}
		if err != nil {
			continue
		}
		anySucceeded = true
		for i := range out {
			out[i] ^= scratch[i]
		}
	}
	if !anySucceeded {
		return ErrAllSourcesFailed
	}
	return nil
}

// EntropyEstimate reports the maximum estimate among its sources: XORing in
// a high-quality source can only help, never hurt, the combined estimate.
func (a *Aggregator) EntropyEstimate() float64 {
	var best float64
	for _, src := range a.Sources {
		if e := src.EntropyEstimate(); e > best {
			best = e
		}
	}
	return best
}
