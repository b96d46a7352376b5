package config

import (
	"encoding/json"
	"fmt"

	"github.com/c360/linestream/errors"
	"github.com/c360/linestream/lineprotocol"
	"github.com/c360/linestream/reader"
)

// Config represents the complete reader configuration
type Config struct {
	// Charset is the IANA name of the source encoding. Empty means UTF-8.
	Charset string `json:"charset,omitempty" yaml:"charset,omitempty"`

	// OnMalformed selects the malformed-data policy: "warn" or "fail".
	OnMalformed string `json:"on_malformed,omitempty" yaml:"on_malformed,omitempty"`

	// Precision is the timestamp unit of the stream: "ns", "us", "ms" or "s".
	Precision string `json:"precision,omitempty" yaml:"precision,omitempty"`

	// MaxLineBytes caps the length of one physical line. 0 uses the
	// reader default of 1 MiB.
	MaxLineBytes int `json:"max_line_bytes,omitempty" yaml:"max_line_bytes,omitempty"`

	Logging LoggingConfig `json:"logging,omitempty" yaml:"logging,omitempty"`
	Metrics MetricsConfig `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

// LoggingConfig defines structured logging settings
type LoggingConfig struct {
	Level  string `json:"level,omitempty" yaml:"level,omitempty"`   // debug, info, warn, error
	Format string `json:"format,omitempty" yaml:"format,omitempty"` // text or json
}

// MetricsConfig defines the Prometheus endpoint settings
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Port    int    `json:"port,omitempty" yaml:"port,omitempty"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
}

// Default returns the built-in configuration defaults
func Default() *Config {
	return &Config{
		OnMalformed: "warn",
		Precision:   "ns",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Port:    9091,
			Path:    "/metrics",
		},
	}
}

// Validate resolves every symbolic setting and rejects the first invalid
// one. All failures carry the configuration error class.
func (c *Config) Validate() error {
	if _, err := reader.LookupCharset(c.Charset); err != nil {
		return errors.WrapConfiguration(err, "config", "Validate", "charset")
	}
	if _, err := reader.ParsePolicy(c.OnMalformed); err != nil {
		return errors.WrapConfiguration(err, "config", "Validate", "on_malformed")
	}
	if _, err := lineprotocol.ParsePrecision(c.Precision); err != nil {
		return errors.WrapConfiguration(err, "config", "Validate", "precision")
	}
	if c.MaxLineBytes < 0 {
		return errors.WrapConfiguration(
			fmt.Errorf("%w: max_line_bytes must not be negative, got %d", errors.ErrInvalidConfig, c.MaxLineBytes),
			"config", "Validate", "max_line_bytes")
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.WrapConfiguration(
			fmt.Errorf("%w: unknown log level %q", errors.ErrInvalidConfig, c.Logging.Level),
			"config", "Validate", "logging.level")
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return errors.WrapConfiguration(
			fmt.Errorf("%w: unknown log format %q", errors.ErrInvalidConfig, c.Logging.Format),
			"config", "Validate", "logging.format")
	}

	if c.Metrics.Enabled && (c.Metrics.Port < 1 || c.Metrics.Port > 65535) {
		return errors.WrapConfiguration(
			fmt.Errorf("%w: metrics port %d out of range", errors.ErrInvalidConfig, c.Metrics.Port),
			"config", "Validate", "metrics.port")
	}

	return nil
}

// ReaderOptions converts the validated configuration into reader options.
// The logger, metrics registry and clock stay with the caller.
func (c *Config) ReaderOptions() (reader.Options, error) {
	if err := c.Validate(); err != nil {
		return reader.Options{}, err
	}

	policy, _ := reader.ParsePolicy(c.OnMalformed)
	precision, _ := lineprotocol.ParsePrecision(c.Precision)

	return reader.Options{
		Charset:      c.Charset,
		Policy:       policy,
		Precision:    precision,
		MaxLineBytes: c.MaxLineBytes,
	}, nil
}

// String returns a JSON representation of the config
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}
