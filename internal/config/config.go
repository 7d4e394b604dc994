package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains application configuration parameters.
type Config struct {
	LogLevel int    `env:"LOG_LEVEL" envDefault:"0"`
	LogFile  string `env:"LOG_FILE"`
	Seed     Seed   `envPrefix:"SEED_"`
	UI       UI     `envPrefix:"UI_"`
}

// Seed controls the data the store starts with.
type Seed struct {
	File string `env:"FILE"`
	Demo bool   `env:"DEMO" envDefault:"true"`
}

// UI contains presentation parameters.
type UI struct {
	ToastDuration time.Duration `env:"TOAST_DURATION" envDefault:"3s"`
	DateLayout    string        `env:"DATE_LAYOUT" envDefault:"Jan 2, 2006"`
	MaskChar      string        `env:"MASK_CHAR" envDefault:"•"`
	AltScreen     bool          `env:"ALT_SCREEN" envDefault:"true"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.UI.ToastDuration <= 0 {
		return nil, fmt.Errorf("toast duration must be positive, got %s", cfg.UI.ToastDuration)
	}
	if cfg.UI.MaskChar == "" {
		return nil, fmt.Errorf("mask char must not be empty")
	}

	return &cfg, nil
}
