// Package config loads the process configuration: defaults, an
// optional YAML file, then MEMKEEP_* environment overrides. The
// resulting value is constructed once at startup and threaded into
// component constructors; nothing reads it from global state.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings.
type Config struct {
	// DBPath is the SQLite database file location.
	DBPath string `yaml:"db_path"`

	// DefaultProject names memories stored without an explicit project.
	DefaultProject string `yaml:"default_project"`

	// SearchLimit caps search results when the caller gives no limit.
	SearchLimit int `yaml:"search_limit"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the baseline configuration.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DBPath:         filepath.Join(home, ".memkeep", "memkeep.db"),
		DefaultProject: "default",
		SearchLimit:    20,
		LogLevel:       "info",
	}
}

// Load builds the configuration: Default, overlaid with
// ~/.memkeep/config.yaml when present, overlaid with environment
// variables. A missing config file is not an error.
func Load() (Config, error) {
	cfg := Default()

	home, err := os.UserHomeDir()
	if err == nil {
		path := filepath.Join(home, ".memkeep", "config.yaml")
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)

	if cfg.SearchLimit <= 0 {
		return cfg, fmt.Errorf("search_limit must be positive, got %d", cfg.SearchLimit)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("MEMKEEP_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("MEMKEEP_DEFAULT_PROJECT"); v != "" {
		cfg.DefaultProject = v
	}
	if v := os.Getenv("MEMKEEP_SEARCH_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.SearchLimit = n
		}
	}
	if v := os.Getenv("MEMKEEP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// SlogLevel maps the configured level name to a slog.Level.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns a text logger writing to stderr. Stdout is
// reserved for JSON-RPC when serving, so logs must never go there.
func (c Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: c.SlogLevel(),
	}))
}
