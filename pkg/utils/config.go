package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/autiwa/mercurygo/pkg/report"
	"github.com/autiwa/mercurygo/pkg/resonance"
)

// Config is the application configuration.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation" mapstructure:"simulation"`
	Resonance  resonance.Config `yaml:"resonance" mapstructure:"resonance"`
	Output     OutputConfig     `yaml:"output" mapstructure:"output"`
}

// SimulationConfig locates the simulation output to analyze.
type SimulationConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	Format   string `yaml:"format" mapstructure:"format" validate:"oneof=text json yaml"`
	LogLevel string `yaml:"log_level" mapstructure:"log_level" validate:"oneof=trace debug info warn error"`
}

var validate = validator.New()

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Dir: ".",
		},
		Resonance: resonance.DefaultConfig(),
		Output: OutputConfig{
			Format:   report.FormatText,
			LogLevel: "info",
		},
	}
}

// LoadConfig loads configuration from file or falls back to defaults.
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		homeDir, _ := os.UserHomeDir()
		viper.AddConfigPath(filepath.Join(homeDir, ".mercurygo"))
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("MERCURYGO")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// SaveConfig writes configuration to the default config file.
func SaveConfig(config *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Configuration saved to: %s\n", path)
	return nil
}

// ValidateConfig validates the configuration.
func ValidateConfig(config *Config) error {
	if err := validate.Struct(config); err != nil {
		return err
	}
	return config.Resonance.Validate()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".mercurygo", "config.yaml"), nil
}
