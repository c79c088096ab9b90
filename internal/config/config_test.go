package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "database:\n  source: kitchen.db\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 9090, cfg.Server.MetricsPort)
	assert.Equal(t, "sqlite3", cfg.Database.Dialect)
	assert.Equal(t, "kitchen.db", cfg.Database.Source)
	assert.Equal(t, 7, cfg.Suggestions.DaysThreshold)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 3000
  metrics_port: 3001
auth:
  enabled: true
  secret: hush
suggestions:
  days_threshold: 5
  menu_size: 8
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 3001, cfg.Server.MetricsPort)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, "hush", cfg.Auth.Secret)
	assert.Equal(t, 5, cfg.Suggestions.DaysThreshold)
	assert.Equal(t, 8, cfg.Suggestions.MenuSize)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := writeConfig(t, "suggestions:\n  days_threshold: -1\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
