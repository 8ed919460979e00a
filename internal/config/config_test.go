package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.SoilGrid.Enabled)
	assert.Equal(t, 12*time.Hour, cfg.SoilGrid.CacheTTL.Std())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
server:
  addr: ":9090"
  shutdown_timeout: 5s
log:
  level: debug
  format: json
soilgrid:
  enabled: false
  cache_ttl: 1h
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout.Std())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.SoilGrid.Enabled)
	assert.Equal(t, time.Hour, cfg.SoilGrid.CacheTTL.Std())
	// Untouched fields keep defaults.
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout.Std())
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("addr and log level", func(t *testing.T) {
		t.Setenv("CROPADVISOR_ADDR", ":7070")
		t.Setenv("CROPADVISOR_LOG_LEVEL", "warn")

		cfg := defaults()
		cfg.applyEnvOverrides()

		assert.Equal(t, ":7070", cfg.Server.Addr)
		assert.Equal(t, "warn", cfg.Log.Level)
	})

	t.Run("soilgrid toggle", func(t *testing.T) {
		t.Setenv("CROPADVISOR_SOILGRID_ENABLED", "false")

		cfg := defaults()
		cfg.applyEnvOverrides()

		assert.False(t, cfg.SoilGrid.Enabled)
	})

	t.Run("invalid bool is ignored", func(t *testing.T) {
		t.Setenv("CROPADVISOR_SOILGRID_ENABLED", "maybe")

		cfg := defaults()
		cfg.applyEnvOverrides()

		assert.True(t, cfg.SoilGrid.Enabled)
	})
}
