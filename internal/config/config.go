// Package config loads plugin settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/casper7/wordle-reactions/internal/safefile"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfigPath = "WORDLE_REACTIONS_CONFIG"
	EnvChannels   = "WORDLE_REACTIONS_CHANNELS"
	EnvPatterns   = "WORDLE_REACTIONS_PATTERNS"
	EnvLogLevel   = "WORDLE_REACTIONS_LOG_LEVEL"
)

// MaxConfigFileSize bounds the config file read.
const MaxConfigFileSize = 256 * 1024

// Config holds all plugin settings.
type Config struct {
	// WordleChannels lists the channel IDs where reactions are enabled.
	WordleChannels []string `yaml:"wordle_channels"`

	// PatternFiles are extra YAML pattern files appended to the catalogue.
	PatternFiles []string `yaml:"pattern_files"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the default configuration: no eligible channels.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
	}
}

// Load builds the configuration from the file at path (or the default
// location when path is empty), then applies environment overrides.
// A missing file at the default location is not an error; a missing file
// that was asked for explicitly is.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if path != "" {
		err := loadFromFile(cfg, path)
		switch {
		case err == nil:
		case !explicit && errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// DefaultPath returns the config file location: $WORDLE_REACTIONS_CONFIG,
// then $XDG_CONFIG_HOME/wordle-reactions/config.yaml, then
// ~/.config/wordle-reactions/config.yaml.
func DefaultPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "wordle-reactions", "config.yaml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "wordle-reactions", "config.yaml")
	}

	return ""
}

func loadFromFile(cfg *Config, path string) error {
	data, err := safefile.ReadLimited(path, MaxConfigFileSize)
	if errors.Is(err, safefile.ErrEmpty) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// loadFromEnv replaces file values with any environment values that are set.
func loadFromEnv(cfg *Config) {
	if channels, ok := os.LookupEnv(EnvChannels); ok {
		cfg.WordleChannels = splitList(channels)
	}
	if patterns, ok := os.LookupEnv(EnvPatterns); ok {
		cfg.PatternFiles = splitList(patterns)
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}
}

// splitList splits a comma-separated list, dropping blank entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks field values.
func (c *Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	for i, id := range c.WordleChannels {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("wordle_channels[%d]: empty channel id", i)
		}
	}
	return nil
}

// SlogLevel converts LogLevel to a slog.Level. An empty level means warn.
func (c *Config) SlogLevel() (slog.Level, error) {
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q (use debug, info, warn or error)", c.LogLevel)
	}
	return level, nil
}
