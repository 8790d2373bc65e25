// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultView = "list"
)

// Config holds the full configuration for taskdeck.
type Config struct {
	// DataDir is where the per-namespace task blobs live.
	DataDir string `toml:"data_dir"`

	// DefaultView is the view the full widget opens with: "list" or "board".
	DefaultView string `toml:"default_view"`

	// SeedSamples controls whether a never-written tasks namespace starts
	// with the sample dataset instead of an empty board.
	SeedSamples bool `toml:"seed_samples"`

	// LogFile receives structured logs. Empty disables file logging;
	// stdout is not an option while the TUI owns the terminal.
	LogFile string `toml:"log_file"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	home, _ := os.UserHomeDir()
	dataDir := filepath.Join(home, ".local", "share", "taskdeck")
	return &Config{
		DataDir:     dataDir,
		DefaultView: DefaultView,
		SeedSamples: true,
		LogFile:     filepath.Join(dataDir, "taskdeck.log"),
	}
}

// DefaultPath returns the expected config file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "taskdeck", "config.toml")
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist. A malformed file is an error: config is the one
// place where failing loud at startup is correct.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg.DataDir = expandHome(cfg.DataDir)
	cfg.LogFile = expandHome(cfg.LogFile)
	if cfg.DefaultView != "list" && cfg.DefaultView != "board" {
		return nil, fmt.Errorf("invalid default_view %q: must be \"list\" or \"board\"", cfg.DefaultView)
	}
	return cfg, nil
}

// expandHome resolves a leading "~/" against the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}
