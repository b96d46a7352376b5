package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/linestream/errors"
	"github.com/c360/linestream/lineprotocol"
	"github.com/c360/linestream/reader"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "warn", cfg.OnMalformed)
	assert.Equal(t, "ns", cfg.Precision)
	assert.Empty(t, cfg.Charset)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"latin-1 charset", func(c *Config) { c.Charset = "ISO-8859-1" }, true},
		{"unknown charset", func(c *Config) { c.Charset = "X-NO-SUCH" }, false},
		{"fail policy", func(c *Config) { c.OnMalformed = "FAIL" }, true},
		{"unknown policy", func(c *Config) { c.OnMalformed = "panic" }, false},
		{"millisecond precision", func(c *Config) { c.Precision = "ms" }, true},
		{"unknown precision", func(c *Config) { c.Precision = "minutes" }, false},
		{"negative line cap", func(c *Config) { c.MaxLineBytes = -1 }, false},
		{"unknown log level", func(c *Config) { c.Logging.Level = "verbose" }, false},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }, false},
		{"metrics port out of range", func(c *Config) {
			c.Metrics.Enabled = true
			c.Metrics.Port = 70000
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, errors.IsConfiguration(err))
			}
		})
	}
}

func TestReaderOptions(t *testing.T) {
	cfg := Default()
	cfg.Charset = "ISO-8859-1"
	cfg.OnMalformed = "fail"
	cfg.Precision = "s"
	cfg.MaxLineBytes = 4096

	opts, err := cfg.ReaderOptions()
	require.NoError(t, err)
	assert.Equal(t, "ISO-8859-1", opts.Charset)
	assert.Equal(t, reader.PolicyFail, opts.Policy)
	assert.Equal(t, lineprotocol.PrecisionSecond, opts.Precision)
	assert.Equal(t, 4096, opts.MaxLineBytes)
}

func TestReaderOptionsRejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.OnMalformed = "panic"

	_, err := cfg.ReaderOptions()
	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
}

func writeLayer(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoaderJSONLayer(t *testing.T) {
	path := writeLayer(t, "reader.json", `{
		"charset": "ISO-8859-1",
		"on_malformed": "fail",
		"metrics": {"enabled": true, "port": 9200}
	}`)

	cfg, err := NewLoader().LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "ISO-8859-1", cfg.Charset)
	assert.Equal(t, "fail", cfg.OnMalformed)
	// Untouched fields keep their defaults.
	assert.Equal(t, "ns", cfg.Precision)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9200, cfg.Metrics.Port)
}

func TestLoaderYAMLLayer(t *testing.T) {
	path := writeLayer(t, "reader.yaml", `
precision: ms
logging:
  level: debug
`)

	cfg, err := NewLoader().LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "ms", cfg.Precision)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoaderLayerPrecedence(t *testing.T) {
	base := writeLayer(t, "base.json", `{"precision": "ms", "charset": "ISO-8859-1"}`)
	override := writeLayer(t, "override.yaml", `precision: s`)

	loader := NewLoader()
	loader.AddLayer(base)
	loader.AddLayer(override)

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "s", cfg.Precision)
	assert.Equal(t, "ISO-8859-1", cfg.Charset)
}

func TestLoaderEnvOverrides(t *testing.T) {
	t.Setenv("LINESTREAM_ON_MALFORMED", "fail")
	t.Setenv("LINESTREAM_MAX_LINE_BYTES", "8192")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, "fail", cfg.OnMalformed)
	assert.Equal(t, 8192, cfg.MaxLineBytes)
}

func TestLoaderRejectsBadEnvNumber(t *testing.T) {
	t.Setenv("LINESTREAM_MAX_LINE_BYTES", "lots")

	_, err := NewLoader().Load()
	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
}

func TestLoaderRejectsInvalidLayer(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoader().LoadFile(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
		assert.True(t, errors.IsConfiguration(err))
	})

	t.Run("bad values fail validation", func(t *testing.T) {
		path := writeLayer(t, "bad.json", `{"on_malformed": "panic"}`)
		_, err := NewLoader().LoadFile(path)
		require.Error(t, err)
		assert.True(t, errors.IsConfiguration(err))
	})
}
