// Package config loads the E-DNA server configuration.
//
// Configuration comes from an optional YAML file, then environment
// overrides. A missing file is not an error: defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvDataDir       = "EDNA_DATA_DIR"
	EnvLogLevel      = "EDNA_LOG_LEVEL"
	EnvStoreDisabled = "EDNA_STORE_DISABLED"
)

// ValidLogLevels lists the levels the logger accepts.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Config holds the runtime settings shared by the CLI and the MCP server.
type Config struct {
	DataDir      string `yaml:"data_dir"`
	LogLevel     string `yaml:"log_level"`
	StoreEnabled bool   `yaml:"store_enabled"`
	HistoryLimit int    `yaml:"history_limit"`
	RenderWidth  int    `yaml:"render_width"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		DataDir:      filepath.Join(home, ".edna"),
		LogLevel:     "info",
		StoreEnabled: true,
		HistoryLimit: 20,
		RenderWidth:  100,
	}
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".edna", "config.yaml")
}

// Load reads path over the defaults and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		c.DataDir = dir
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = strings.ToLower(level)
	}
	if v := os.Getenv(EnvStoreDisabled); v != "" {
		if disabled, err := strconv.ParseBool(v); err == nil {
			c.StoreEnabled = !disabled
		}
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.StoreEnabled && c.DataDir == "" {
		return fmt.Errorf("data_dir is required when the store is enabled")
	}
	valid := false
	for _, l := range ValidLogLevels {
		if c.LogLevel == l {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid log_level: %s (valid: %v)", c.LogLevel, ValidLogLevels)
	}
	if c.HistoryLimit < 1 {
		return fmt.Errorf("history_limit must be positive, got %d", c.HistoryLimit)
	}
	if c.RenderWidth < 20 {
		return fmt.Errorf("render_width must be at least 20, got %d", c.RenderWidth)
	}
	return nil
}
