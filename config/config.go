// SPDX-License-Identifier: MIT
// Package config loads the analyzer settings from YAML, applies environment
// overrides and validates the result.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation or decoding failure.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the top-level configuration document.
type Config struct {
	// Input is the roster file opened when no --input flag is given.
	Input string `yaml:"input"`

	// GroupAttribute selects the field used by the connection-groups command.
	GroupAttribute string `yaml:"group_attribute" validate:"oneof=affiliation unit category group"`

	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
	Export  ExportConfig  `yaml:"export"`
	Server  ServerConfig  `yaml:"server"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// MetricsConfig controls the standalone Prometheus listener.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address" validate:"required_if=Enabled true"`
}

// ExportConfig styles the HTML rendering.
type ExportConfig struct {
	Title          string `yaml:"title" validate:"required,max=128"`
	ConnectorColor string `yaml:"connector_color" validate:"hexcolor"`
	NodeColor      string `yaml:"node_color" validate:"hexcolor"`
	Compress       bool   `yaml:"compress"`
}

// ServerConfig controls the HTTP API started by "serve".
type ServerConfig struct {
	Address string `yaml:"address" validate:"required"`
	Watch   bool   `yaml:"watch"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		GroupAttribute: "affiliation",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Address: ":9090",
		},
		Export: ExportConfig{
			Title:          "Network",
			ConnectorColor: "#e74c3c",
			NodeColor:      "#3498db",
		},
		Server: ServerConfig{
			Address: ":8080",
		},
	}
}

// Load reads path on top of the defaults, applies environment overrides and
// validates. An empty path yields the defaults; a missing file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
		}
	}
	applyEnv(&cfg, os.LookupEnv)

	return cfg, cfg.Validate()
}

// Parse decodes a YAML document on top of the defaults and validates it.
// Environment variables are not consulted.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the struct constraints and reports the first violation.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q", ErrInvalid, fe.Namespace(), fe.Tag())
		}

		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Environment variables consulted by Load.
const (
	EnvInput       = "NETANALYZER_INPUT"
	EnvLogLevel    = "NETANALYZER_LOG_LEVEL"
	EnvLogFormat   = "NETANALYZER_LOG_FORMAT"
	EnvMetricsAddr = "NETANALYZER_METRICS_ADDR"
	EnvServerAddr  = "NETANALYZER_SERVER_ADDR"
)

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvInput); ok && v != "" {
		cfg.Input = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		cfg.Log.Format = v
	}
	if v, ok := lookup(EnvMetricsAddr); ok && v != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Address = v
	}
	if v, ok := lookup(EnvServerAddr); ok && v != "" {
		cfg.Server.Address = v
	}
}
