// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"roas-calculator/core/types"
	"roas-calculator/internal/errors"
	"roas-calculator/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Calculator holds the inputs used when a request leaves them out
	Calculator CalculatorConfig `json:"calculator"`

	// Catalog points at an alternate tier catalog
	Catalog CatalogConfig `json:"catalog"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// CalculatorConfig holds default calculator inputs
type CalculatorConfig struct {
	// DefaultTier is the tier key preselected in the calculator
	DefaultTier string `json:"default_tier"`

	// Spend is the default monthly ad spend
	Spend float64 `json:"spend"`

	// ROAS is the default target return on ad spend
	ROAS float64 `json:"roas"`

	// MarginPercent is the default gross margin, 0-100
	MarginPercent float64 `json:"margin_percent"`
}

// CatalogConfig locates the tier catalog
type CatalogConfig struct {
	// Path is an HCL, YAML or JSON catalog file. Empty uses the built-in tiers.
	Path string `json:"path,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// Currency is the display currency
	Currency types.Currency `json:"currency"`

	// Locale is a BCP 47 tag used for digit grouping
	Locale string `json:"locale"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// ReadTimeoutSeconds bounds reading a request
	ReadTimeoutSeconds int `json:"read_timeout_seconds"`

	// WriteTimeoutSeconds bounds writing a response
	WriteTimeoutSeconds int `json:"write_timeout_seconds"`
}

// ReadTimeout returns the read timeout as a duration
func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the write timeout as a duration
func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSeconds) * time.Second
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Calculator: CalculatorConfig{
			DefaultTier:   "silver",
			Spend:         2500,
			ROAS:          3,
			MarginPercent: 60,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			Currency:      types.CurrencyEUR,
			Locale:        "el-GR",
		},
		Server: ServerConfig{
			Addr:                ":8080",
			ReadTimeoutSeconds:  10,
			WriteTimeoutSeconds: 10,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.roas-calculator.json
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".roas-calculator.json")
}

// Load loads configuration from a file.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("failed to read config", err).WithContext("path", path)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Parsing("invalid config JSON", err).WithContext("path", path)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	switch {
	case c.Calculator.Spend < 0:
		return errors.Newf(errors.TypeConfig, "calculator.spend must not be negative, got %v", c.Calculator.Spend)
	case c.Calculator.ROAS < 0:
		return errors.Newf(errors.TypeConfig, "calculator.roas must not be negative, got %v", c.Calculator.ROAS)
	case c.Calculator.MarginPercent < 0 || c.Calculator.MarginPercent > 100:
		return errors.Newf(errors.TypeConfig, "calculator.margin_percent must be within 0-100, got %v", c.Calculator.MarginPercent)
	case c.Server.ReadTimeoutSeconds < 0 || c.Server.WriteTimeoutSeconds < 0:
		return errors.New(errors.TypeConfig, "server timeouts must not be negative")
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
