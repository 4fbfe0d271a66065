package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

const (
	DefaultListLimit        = 10
	DefaultNotesLimit       = 5
	DefaultTranscriptBudget = 3000
	DefaultLogLevel         = "warn"
)

type Config struct {
	CachePath        string
	ListLimit        int
	NotesLimit       int
	TranscriptBudget int // characters of transcript shown by `get --transcript`
	LogLevel         string
	LogFile          string // empty disables file logging
}

type fileConfig struct {
	CachePath        string `toml:"cache_path"`
	ListLimit        int    `toml:"list_limit"`
	NotesLimit       int    `toml:"notes_limit"`
	TranscriptBudget int    `toml:"transcript_budget"`
	LogLevel         string `toml:"log_level"`
	LogFile          string `toml:"log_file"`
}

func Default() *Config {
	return &Config{
		CachePath:        DefaultCachePath(),
		ListLimit:        DefaultListLimit,
		NotesLimit:       DefaultNotesLimit,
		TranscriptBudget: DefaultTranscriptBudget,
		LogLevel:         DefaultLogLevel,
	}
}

func Load() (*Config, error) {
	cfg := Default()

	if configPath := configFilePath(); configPath != "" {
		if err := loadFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("reading %s: %w", configPath, err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return err
	}
	if fc.CachePath != "" {
		cfg.CachePath = expandTilde(fc.CachePath)
	}
	if fc.ListLimit != 0 {
		cfg.ListLimit = fc.ListLimit
	}
	if fc.NotesLimit != 0 {
		cfg.NotesLimit = fc.NotesLimit
	}
	if fc.TranscriptBudget != 0 {
		cfg.TranscriptBudget = fc.TranscriptBudget
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.LogFile != "" {
		cfg.LogFile = expandTilde(fc.LogFile)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("GRANOLA_CACHE_PATH"); v != "" {
		cfg.CachePath = expandTilde(v)
	}
	if v := os.Getenv("GRANOLA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("GRANOLA_TRANSCRIPT_BUDGET"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GRANOLA_TRANSCRIPT_BUDGET: %w", err)
		}
		cfg.TranscriptBudget = n
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.CachePath == "" {
		return fmt.Errorf("cache_path must not be empty")
	}
	if c.ListLimit <= 0 {
		return fmt.Errorf("list_limit must be greater than 0")
	}
	if c.NotesLimit <= 0 {
		return fmt.Errorf("notes_limit must be greater than 0")
	}
	if c.TranscriptBudget <= 0 {
		return fmt.Errorf("transcript_budget must be greater than 0")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// DefaultCachePath is where the Granola desktop app keeps its cache, e.g.
// ~/Library/Application Support/Granola/cache-v3.json on macOS.
func DefaultCachePath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "Granola", "cache-v3.json")
	}
	return filepath.Join(".", "cache-v3.json")
}

// FilePath returns the config file location, whether or not it exists.
func FilePath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "granola-meetings", "config.toml")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "granola-meetings", "config.toml")
	}
	return ""
}

func configFilePath() string {
	path := FilePath()
	if path == "" {
		return ""
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
