package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360/linestream/errors"
)

// Loader handles configuration loading with layers and overrides
type Loader struct {
	layers     []string
	validation bool
	envPrefix  string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		validation: true,
		envPrefix:  "LINESTREAM",
	}
}

// AddLayer adds a configuration file layer. Later layers override
// earlier ones.
func (l *Loader) AddLayer(path string) {
	l.layers = append(l.layers, path)
}

// EnableValidation enables or disables configuration validation
func (l *Loader) EnableValidation(enable bool) {
	l.validation = enable
}

// LoadFile loads configuration from a single file
func (l *Loader) LoadFile(path string) (*Config, error) {
	l.layers = []string{path}
	return l.Load()
}

// Load merges defaults, file layers and environment overrides
func (l *Loader) Load() (*Config, error) {
	cfg := Default()

	for _, path := range l.layers {
		raw, err := l.loadRaw(path)
		if err != nil {
			return nil, errors.WrapConfiguration(err, "config", "Load", fmt.Sprintf("layer %s", path))
		}
		cfg = l.mergeFromMap(cfg, raw)
	}

	if err := l.applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if l.validation {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// loadRaw reads one layer into a map. The file extension selects the
// format: .yaml/.yml parse as YAML, everything else as JSON.
func (l *Loader) loadRaw(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	}
	return raw, nil
}

// mergeFromMap merges a raw layer over the base config, only overriding
// fields present in the map.
func (l *Loader) mergeFromMap(base *Config, override map[string]any) *Config {
	if override == nil {
		return base
	}

	baseJSON, err := json.Marshal(base)
	if err != nil {
		return base
	}
	var baseMap map[string]any
	if err := json.Unmarshal(baseJSON, &baseMap); err != nil {
		return base
	}

	mergedMap := deepMergeMaps(baseMap, override)

	mergedJSON, err := json.Marshal(mergedMap)
	if err != nil {
		return base
	}
	var merged Config
	if err := json.Unmarshal(mergedJSON, &merged); err != nil {
		return base
	}
	return &merged
}

// deepMergeMaps recursively merges two maps, with override taking precedence
func deepMergeMaps(base, override map[string]any) map[string]any {
	result := make(map[string]any, len(base))
	for k, v := range base {
		result[k] = v
	}

	for k, v := range override {
		if v == nil {
			continue
		}
		if baseMap, ok := base[k].(map[string]any); ok {
			if overrideMap, ok := v.(map[string]any); ok {
				result[k] = deepMergeMaps(baseMap, overrideMap)
				continue
			}
		}
		result[k] = v
	}
	return result
}

// applyEnvOverrides applies LINESTREAM_* environment variable overrides
func (l *Loader) applyEnvOverrides(cfg *Config) error {
	if val := os.Getenv(l.envPrefix + "_CHARSET"); val != "" {
		cfg.Charset = val
	}
	if val := os.Getenv(l.envPrefix + "_ON_MALFORMED"); val != "" {
		cfg.OnMalformed = val
	}
	if val := os.Getenv(l.envPrefix + "_PRECISION"); val != "" {
		cfg.Precision = val
	}
	if val := os.Getenv(l.envPrefix + "_MAX_LINE_BYTES"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return errors.WrapConfiguration(
				fmt.Errorf("%w: %s_MAX_LINE_BYTES=%q", errors.ErrInvalidConfig, l.envPrefix, val),
				"config", "Load", "environment override")
		}
		cfg.MaxLineBytes = n
	}
	if val := os.Getenv(l.envPrefix + "_LOG_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv(l.envPrefix + "_LOG_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}
	if val := os.Getenv(l.envPrefix + "_METRICS_PORT"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return errors.WrapConfiguration(
				fmt.Errorf("%w: %s_METRICS_PORT=%q", errors.ErrInvalidConfig, l.envPrefix, val),
				"config", "Load", "environment override")
		}
		cfg.Metrics.Port = n
		cfg.Metrics.Enabled = true
	}
	return nil
}
