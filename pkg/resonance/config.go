package resonance

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
)

// Config holds the tunable parameters of the detector. The defaults
// match the values used for mercury simulation post-processing.
type Config struct {
	// DenominatorLimit bounds the denominator of candidate fractions.
	DenominatorLimit int `default:"30" validate:"gte=1" yaml:"denominator_limit" mapstructure:"denominator_limit"`

	// SampleCount is the number of period ratios scanned per pair.
	SampleCount int `default:"100" validate:"gte=1" yaml:"sample_count" mapstructure:"sample_count"`

	// UncertaintyFraction is the fractional half-width of the scan
	// window around the observed period ratio.
	UncertaintyFraction float64 `default:"0.05" validate:"gte=0" yaml:"uncertainty_fraction" mapstructure:"uncertainty_fraction"`

	// TrailingPoints is the number of most-recent samples per body used
	// for the libration test.
	TrailingPoints int `default:"50" validate:"gte=1" yaml:"trailing_points" mapstructure:"trailing_points"`

	// LibrationStdThreshold is the standard deviation, in degrees, below
	// which a resonant angle is considered to librate. Values around 25
	// are typical for a real resonance; 40 keeps a safety margin.
	LibrationStdThreshold float64 `default:"40" validate:"gt=0" yaml:"libration_std_threshold" mapstructure:"libration_std_threshold"`

	// AngleFoldMin and AngleFoldMax bound the window angles are folded
	// into. The window must span exactly 360 degrees.
	AngleFoldMin float64 `default:"-180" yaml:"angle_fold_min" mapstructure:"angle_fold_min"`
	AngleFoldMax float64 `default:"180" yaml:"angle_fold_max" mapstructure:"angle_fold_max"`
}

var validate = validator.New()

// DefaultConfig returns a Config populated with the default values.
func DefaultConfig() Config {
	var c Config
	if err := defaults.Set(&c); err != nil {
		panic(err) // struct tags are static; cannot fail at runtime
	}
	return c
}

// Validate checks the configuration for values the detector cannot
// work with.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid resonance config: %w", err)
	}
	if c.AngleFoldMax-c.AngleFoldMin != 360 {
		return fmt.Errorf("invalid resonance config: fold window [%g,%g) must span 360 degrees", c.AngleFoldMin, c.AngleFoldMax)
	}
	return nil
}
