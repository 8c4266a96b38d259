package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("KEYWHIZ_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.BindAddress)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1000, cfg.APIListLimitMax)
	assert.Equal(t, "default", cfg.Source("port"))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("port: 9090\nlog_level: debug\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), content, 0o644))
	t.Setenv("KEYWHIZ_CONFIG_PATH", dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "file", cfg.Source("port"))
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched attributes keep their defaults.
	assert.Equal(t, "0.0.0.0", cfg.BindAddress)
	assert.Equal(t, "default", cfg.Source("bind_address"))
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("port: 9090\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), content, 0o644))
	t.Setenv("KEYWHIZ_CONFIG_PATH", dir)
	t.Setenv("KEYWHIZ_PORT", "7070")
	t.Setenv("KEYWHIZ_DEFAULT_CREATOR", "ops-bot")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "environment", cfg.Source("port"))
	assert.Equal(t, "ops-bot", cfg.DefaultCreator)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("port: [nope"), 0o644))
	t.Setenv("KEYWHIZ_CONFIG_PATH", dir)

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := newDefault()
	require.NoError(t, cfg.Validate())

	cfg.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = newDefault()
	cfg.LogLevel = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = newDefault()
	cfg.ACLFile = filepath.Join(t.TempDir(), "missing.yml")
	assert.Error(t, cfg.Validate())
}
