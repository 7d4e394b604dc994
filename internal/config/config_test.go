package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultValues(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, "", cfg.LogFile)
	assert.Equal(t, "", cfg.Seed.File)
	assert.Equal(t, true, cfg.Seed.Demo)
	assert.Equal(t, 3*time.Second, cfg.UI.ToastDuration)
	assert.Equal(t, "Jan 2, 2006", cfg.UI.DateLayout)
	assert.Equal(t, "•", cfg.UI.MaskChar)
	assert.Equal(t, true, cfg.UI.AltScreen)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "log override",
			envVars: map[string]string{
				"LOG_LEVEL": "-4",
				"LOG_FILE":  "/tmp/vault.log",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, -4, cfg.LogLevel)
				assert.Equal(t, "/tmp/vault.log", cfg.LogFile)
			},
		},
		{
			name: "seed override",
			envVars: map[string]string{
				"SEED_FILE": "seed.yaml",
				"SEED_DEMO": "false",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "seed.yaml", cfg.Seed.File)
				assert.Equal(t, false, cfg.Seed.Demo)
			},
		},
		{
			name: "ui override",
			envVars: map[string]string{
				"UI_TOAST_DURATION": "500ms",
				"UI_DATE_LAYOUT":    "2006-01-02",
				"UI_MASK_CHAR":      "*",
				"UI_ALT_SCREEN":     "false",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, 500*time.Millisecond, cfg.UI.ToastDuration)
				assert.Equal(t, "2006-01-02", cfg.UI.DateLayout)
				assert.Equal(t, "*", cfg.UI.MaskChar)
				assert.Equal(t, false, cfg.UI.AltScreen)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)

			tt.expected(cfg)
		})
	}
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
	}{
		{name: "bad log level", envVars: map[string]string{"LOG_LEVEL": "loud"}},
		{name: "bad duration", envVars: map[string]string{"UI_TOAST_DURATION": "soon"}},
		{name: "zero duration", envVars: map[string]string{"UI_TOAST_DURATION": "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}
