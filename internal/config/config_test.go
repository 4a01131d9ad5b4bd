package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8000", cfg.APIURL)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.Email)
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PLX_API_URL", "https://planner.example.com")
	t.Setenv("PLX_EMAIL", "admin@example.com")
	t.Setenv("PLX_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://planner.example.com", cfg.APIURL)
	assert.Equal(t, "admin@example.com", cfg.Email)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFileOverlay(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, os.MkdirAll(filepath.Join(home, ".plx"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(home, ".plx", "config.yaml"),
		[]byte("api_url: https://file.example.com\nemail: file@example.com\n"),
		0o600,
	))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://file.example.com", cfg.APIURL)
	assert.Equal(t, "file@example.com", cfg.Email)
}

func TestEnvWinsOverFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PLX_API_URL", "https://env.example.com")

	require.NoError(t, os.MkdirAll(filepath.Join(home, ".plx"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(home, ".plx", "config.yaml"),
		[]byte("api_url: https://file.example.com\n"),
		0o600,
	))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.APIURL)
}
