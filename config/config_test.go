package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("GRANOLA_CACHE_PATH", "")
	t.Setenv("GRANOLA_LOG_LEVEL", "")
	t.Setenv("GRANOLA_TRANSCRIPT_BUDGET", "")
	return dir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, "granola-meetings", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultCachePath(), cfg.CachePath)
	assert.Equal(t, "cache-v3.json", filepath.Base(cfg.CachePath))
	assert.Equal(t, DefaultListLimit, cfg.ListLimit)
	assert.Equal(t, DefaultNotesLimit, cfg.NotesLimit)
	assert.Equal(t, 3000, cfg.TranscriptBudget)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `
cache_path = "~/granola/cache.json"
notes_limit = 3
log_level = "debug"
log_file = "~/logs/granola.log"
`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "granola", "cache.json"), cfg.CachePath)
	assert.Equal(t, 3, cfg.NotesLimit)
	assert.Equal(t, DefaultListLimit, cfg.ListLimit)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, filepath.Join(dir, "logs", "granola.log"), cfg.LogFile)
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `cache_path = "/from/file.json"`)
	t.Setenv("GRANOLA_CACHE_PATH", "/from/env.json")
	t.Setenv("GRANOLA_TRANSCRIPT_BUDGET", "500")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/from/env.json", cfg.CachePath)
	assert.Equal(t, 500, cfg.TranscriptBudget)
}

func TestLoadErrors(t *testing.T) {
	t.Run("malformed toml", func(t *testing.T) {
		dir := isolate(t)
		writeConfig(t, dir, `cache_path = `)
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad budget env", func(t *testing.T) {
		isolate(t)
		t.Setenv("GRANOLA_TRANSCRIPT_BUDGET", "lots")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad log level", func(t *testing.T) {
		isolate(t)
		t.Setenv("GRANOLA_LOG_LEVEL", "chatty")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty cache path", func(c *Config) { c.CachePath = "" }},
		{"zero list limit", func(c *Config) { c.ListLimit = 0 }},
		{"negative notes limit", func(c *Config) { c.NotesLimit = -1 }},
		{"zero budget", func(c *Config) { c.TranscriptBudget = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, Default().Validate())
}
