package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the tmsel configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	History HistoryConfig `yaml:"history"`
}

// OutputConfig holds rendering-related settings.
type OutputConfig struct {
	Format string `yaml:"format"` // text, markdown, or json
	Color  string `yaml:"color"`  // auto, always, or never
}

// HistoryConfig holds run-history settings.
type HistoryConfig struct {
	Enabled       bool   `yaml:"enabled"`        // Save each run to the local database
	RetentionDays int    `yaml:"retention_days"` // Prune runs older than this (0 = keep forever)
	DBPath        string `yaml:"db_path"`        // Database path (empty = default)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "text",
			Color:  "auto",
		},
		History: HistoryConfig{
			Enabled:       true,
			RetentionDays: 365,
			DBPath:        "", // Use default from paths
		},
	}
}

// Load loads configuration from the default path.
func Load() (*Config, error) {
	paths := DefaultPaths()
	return LoadFromFile(paths.ConfigFile())
}

// LoadFromFile loads configuration from the specified file.
// If the file doesn't exist, returns default configuration.
// Environment variable overrides are applied after file loading.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.ApplyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Save saves the configuration to the default path.
func (c *Config) Save() error {
	paths := DefaultPaths()
	return c.SaveToFile(paths.ConfigFile())
}

// SaveToFile saves the configuration to the specified file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get retrieves a configuration value by dot-separated key.
// For example: "output.format" or "history.enabled"
func (c *Config) Get(key string) (string, error) {
	section, field, err := splitKey(key)
	if err != nil {
		return "", err
	}

	switch section {
	case "output":
		return c.getOutputField(field)
	case "history":
		return c.getHistoryField(field)
	default:
		return "", fmt.Errorf("unknown section: %s", section)
	}
}

// Set sets a configuration value by dot-separated key.
func (c *Config) Set(key, value string) error {
	section, field, err := splitKey(key)
	if err != nil {
		return err
	}

	switch section {
	case "output":
		return c.setOutputField(field, value)
	case "history":
		return c.setHistoryField(field, value)
	default:
		return fmt.Errorf("unknown section: %s", section)
	}
}

func splitKey(key string) (section, field string, err error) {
	parts := strings.Split(key, ".")
	if len(parts) != 2 {
		return "", "", errors.New("key must be in format 'section.key'")
	}
	return parts[0], parts[1], nil
}

func (c *Config) getOutputField(field string) (string, error) {
	switch field {
	case "format":
		return c.Output.Format, nil
	case "color":
		return c.Output.Color, nil
	default:
		return "", fmt.Errorf("unknown field: output.%s", field)
	}
}

func (c *Config) setOutputField(field, value string) error {
	switch field {
	case "format":
		if !IsValidFormat(value) {
			return fmt.Errorf("invalid format: %s (must be text, markdown, or json)", value)
		}
		c.Output.Format = value
	case "color":
		if !isValidColorMode(value) {
			return fmt.Errorf("invalid color: %s (must be auto, always, or never)", value)
		}
		c.Output.Color = value
	default:
		return fmt.Errorf("unknown field: output.%s", field)
	}
	return nil
}

func (c *Config) getHistoryField(field string) (string, error) {
	switch field {
	case "enabled":
		return strconv.FormatBool(c.History.Enabled), nil
	case "retention_days":
		return strconv.Itoa(c.History.RetentionDays), nil
	case "db_path":
		return c.History.DBPath, nil
	default:
		return "", fmt.Errorf("unknown field: history.%s", field)
	}
}

func (c *Config) setHistoryField(field, value string) error {
	switch field {
	case "enabled":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for enabled: %w", err)
		}
		c.History.Enabled = v
	case "retention_days":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for retention_days: %w", err)
		}
		if v < 0 {
			return fmt.Errorf("invalid retention_days: must be non-negative")
		}
		c.History.RetentionDays = v
	case "db_path":
		c.History.DBPath = value
	default:
		return fmt.Errorf("unknown field: history.%s", field)
	}
	return nil
}

// Validate validates the configuration. Invalid enum values fall back to
// defaults with a warning; validation never prevents startup.
func (c *Config) Validate() error {
	defaults := DefaultConfig()

	if !IsValidFormat(c.Output.Format) {
		log.Printf("WARN config: output.format: must be text, markdown, or json, got %q; falling back to %q", c.Output.Format, defaults.Output.Format)
		c.Output.Format = defaults.Output.Format
	}
	if !isValidColorMode(c.Output.Color) {
		log.Printf("WARN config: output.color: must be auto, always, or never, got %q; falling back to %q", c.Output.Color, defaults.Output.Color)
		c.Output.Color = defaults.Output.Color
	}
	if c.History.RetentionDays < 0 {
		log.Printf("WARN config: history.retention_days: must be >= 0, got %d; falling back to %d", c.History.RetentionDays, defaults.History.RetentionDays)
		c.History.RetentionDays = defaults.History.RetentionDays
	}

	return nil
}

// ApplyEnvOverrides applies environment variable overrides to the config.
// Environment variables override config file values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("TMSEL_FORMAT"); v != "" {
		if IsValidFormat(v) {
			c.Output.Format = v
		}
	}
	if v := os.Getenv("TMSEL_HISTORY_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.History.Enabled = b
		}
	}
	if v := os.Getenv("TMSEL_DB_PATH"); v != "" {
		c.History.DBPath = v
	}
	if os.Getenv("NO_COLOR") != "" {
		c.Output.Color = "never"
	}
}

// ListKeys returns user-facing configuration keys.
func ListKeys() []string {
	return []string{
		"output.format",
		"output.color",
		"history.enabled",
		"history.retention_days",
		"history.db_path",
	}
}

// IsValidFormat reports whether format is a supported output format.
func IsValidFormat(format string) bool {
	switch format {
	case "text", "markdown", "json":
		return true
	default:
		return false
	}
}

func isValidColorMode(mode string) bool {
	switch mode {
	case "auto", "always", "never":
		return true
	default:
		return false
	}
}
