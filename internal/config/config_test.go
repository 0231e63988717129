package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at a temp dir and clears PHUB_* variables.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"PHUB_DB", "PHUB_PORT", "PHUB_DEV_MODE", "PHUB_SERVER_URL", "PHUB_SEED_FILE", "PHUB_CORS_ORIGINS"} {
		t.Setenv(k, "")
	}
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveAndLoad(t *testing.T) {
	home := isolate(t)

	cfg := Config{
		DBPath:      "/tmp/listings.db",
		Port:        9090,
		ServerURL:   "http://myhost:9090",
		CORSOrigins: []string{"https://example.com"},
	}
	require.NoError(t, Save(cfg))

	path := filepath.Join(home, ".config", "phub", "config.yaml")
	_, err := os.Stat(path)
	require.NoError(t, err, "config file not written")

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestFileKeepsDefaultsForMissingKeys(t *testing.T) {
	isolate(t)

	require.NoError(t, Save(Config{DBPath: "/data/listings.db"}))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/data/listings.db", cfg.DBPath)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultServerURL, cfg.ServerURL)
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)
	require.NoError(t, Save(Config{Port: 9090, ServerURL: "http://file:9090"}))

	t.Setenv("PHUB_PORT", "7070")
	t.Setenv("PHUB_SERVER_URL", "http://env:7070")
	t.Setenv("PHUB_DEV_MODE", "true")
	t.Setenv("PHUB_DB", "/env/listings.db")
	t.Setenv("PHUB_SEED_FILE", "/env/seed.yaml")
	t.Setenv("PHUB_CORS_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "http://env:7070", cfg.ServerURL)
	assert.True(t, cfg.DevMode)
	assert.Equal(t, "/env/listings.db", cfg.DBPath)
	assert.Equal(t, "/env/seed.yaml", cfg.SeedFile)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"port not a number", map[string]string{"PHUB_PORT": "eighty"}},
		{"port out of range", map[string]string{"PHUB_PORT": "70000"}},
		{"dev mode not a bool", map[string]string{"PHUB_DEV_MODE": "maybe"}},
		{"server url invalid", map[string]string{"PHUB_SERVER_URL": "not a url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	home := isolate(t)

	dir := filepath.Join(home, ".config", "phub")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("port: [1"), 0o600))

	_, err := Load()
	assert.ErrorContains(t, err, "parsing config")
}

func TestLoadFileIgnoresEnv(t *testing.T) {
	isolate(t)
	require.NoError(t, Save(Config{Port: 9191}))
	t.Setenv("PHUB_PORT", "7070")

	cfg, err := LoadFile()
	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.Port)
	assert.Equal(t, DefaultServerURL, cfg.ServerURL)
}
