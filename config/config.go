// Package config provides the module's typed, validated startup
// configuration: pad storage location, scrypt cost, and entropy
// health-test cutoffs.
package config

import (
	"errors"

	"github.com/veilmesh/otgm/entropy/health"
	"github.com/veilmesh/otgm/storage/shareenc"
)

// ErrInvalidConfig is returned by Validate when a field fails its
// constraint.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config bundles every knob the layers above the core need at startup.
// Zero-value Config is not valid; use Default, override fields directly,
// then call Validate.
type Config struct {
	// PadDir is the filesystem directory pad-files and the pad registry are
	// stored under.
	PadDir string

	// ShareEncCost selects the scrypt work factor for share-encrypted
	// storage.
	ShareEncCost shareenc.Cost

	// RepetitionCutoff and ProportionCutoff hold the entropy health-test
	// cutoffs; Default sets the health package's values, and Validate
	// rejects zero or negative values.
	RepetitionCutoff int
	ProportionCutoff int
}

// Default returns a Config with conservative defaults: interactive scrypt
// cost and the health tester's documented cutoffs.
func Default() Config {
	return Config{
		PadDir:           "./pads",
		ShareEncCost:     shareenc.CostInteractive,
		RepetitionCutoff: health.RepetitionCutoff,
		ProportionCutoff: health.ProportionCutoff,
	}
}

// Validate checks every field's constraints, returning ErrInvalidConfig
// wrapped with context on the first failure found.
func (c Config) Validate() error {
	if c.PadDir == "" {
		return errors.Join(ErrInvalidConfig, errors.New("PadDir must not be empty"))
	}
	if c.ShareEncCost != shareenc.CostInteractive && c.ShareEncCost != shareenc.CostArchival {
		return errors.Join(ErrInvalidConfig, errors.New("ShareEncCost must be interactive or archival"))
	}
	if c.RepetitionCutoff <= 0 {
		return errors.Join(ErrInvalidConfig, errors.New("RepetitionCutoff must be positive"))
	}
	if c.ProportionCutoff <= 0 {
		return errors.Join(ErrInvalidConfig, errors.New("ProportionCutoff must be positive"))
	}
	return nil
}
