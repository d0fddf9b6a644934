package resonance

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DenominatorLimit != 30 {
		t.Errorf("DenominatorLimit = %d, want 30", cfg.DenominatorLimit)
	}
	if cfg.SampleCount != 100 {
		t.Errorf("SampleCount = %d, want 100", cfg.SampleCount)
	}
	if cfg.UncertaintyFraction != 0.05 {
		t.Errorf("UncertaintyFraction = %g, want 0.05", cfg.UncertaintyFraction)
	}
	if cfg.TrailingPoints != 50 {
		t.Errorf("TrailingPoints = %d, want 50", cfg.TrailingPoints)
	}
	if cfg.LibrationStdThreshold != 40 {
		t.Errorf("LibrationStdThreshold = %g, want 40", cfg.LibrationStdThreshold)
	}
	if cfg.AngleFoldMin != -180 || cfg.AngleFoldMax != 180 {
		t.Errorf("fold window = [%g,%g), want [-180,180)", cfg.AngleFoldMin, cfg.AngleFoldMax)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero denominator limit", func(c *Config) { c.DenominatorLimit = 0 }},
		{"zero sample count", func(c *Config) { c.SampleCount = 0 }},
		{"negative uncertainty", func(c *Config) { c.UncertaintyFraction = -0.1 }},
		{"zero trailing points", func(c *Config) { c.TrailingPoints = 0 }},
		{"zero threshold", func(c *Config) { c.LibrationStdThreshold = 0 }},
		{"narrow fold window", func(c *Config) { c.AngleFoldMax = 90 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}
