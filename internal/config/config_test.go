package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, 200*time.Millisecond, cfg.Simulation.MinDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.Simulation.MaxDelay)
	assert.InDelta(t, 0.05, cfg.Simulation.FailureRate, 1e-9)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, "carehub", cfg.Metrics.Namespace)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := writeFile(t, `
server:
  port: 9000
simulation:
  min_delay: 10ms
  max_delay: 20ms
  failure_rate: 0.5
redis:
  url: redis://localhost:6379/0
`)
	t.Setenv("CAREHUB_SERVER_PORT", "9100")
	t.Setenv("CAREHUB_SIMULATION_FAILURE_RATE", "0")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, 10*time.Millisecond, cfg.Simulation.MinDelay)
	assert.Equal(t, 20*time.Millisecond, cfg.Simulation.MaxDelay)
	assert.Zero(t, cfg.Simulation.FailureRate)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, 100, cfg.Outbox.BatchSize)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"failure rate above one", "simulation:\n  failure_rate: 1.5\n"},
		{"max delay below min", "simulation:\n  min_delay: 1s\n  max_delay: 10ms\n"},
		{"unknown log level", "log:\n  level: loud\n"},
		{"port out of range", "server:\n  port: 70000\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}
