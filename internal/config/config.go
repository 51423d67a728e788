// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings shared by every command. Command-line flags
// override these values.
type Config struct {
	// LogLevel is a zap level name: debug, info, warn or error.
	LogLevel string `env:"LENSLAB_LOG_LEVEL" envDefault:"info"`

	// SeedMax bounds freshly drawn seeds to [0, SeedMax).
	SeedMax int64 `env:"LENSLAB_SEED_MAX" envDefault:"1000000"`

	// Catalog is the path of a substitute catalog. Empty selects the
	// embedded one.
	Catalog string `env:"LENSLAB_CATALOG"`

	// ResampleDegenerate redraws problems whose object sits at the focal
	// point instead of reporting that no image forms.
	ResampleDegenerate bool `env:"LENSLAB_RESAMPLE_DEGENERATE" envDefault:"false"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.SeedMax <= 0 {
		return Config{}, fmt.Errorf("LENSLAB_SEED_MAX must be positive, got %d", cfg.SeedMax)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
