package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath   string
	InputPath    string
	Charset      string
	OnMalformed  string
	Precision    string
	MaxLineBytes int
	LogLevel     string
	LogFormat    string
	MetricsPort  int
	PrintSchema  bool
	ShowVersion  bool
	ShowHelp     bool
	Validate     bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	// Define flags with environment variable fallback
	flag.StringVar(&cfg.ConfigPath, "config",
		getEnv("LINESTREAM_CONFIG", ""),
		"Path to configuration file, JSON or YAML (env: LINESTREAM_CONFIG)")

	flag.StringVar(&cfg.ConfigPath, "c",
		getEnv("LINESTREAM_CONFIG", ""),
		"Path to configuration file, JSON or YAML (env: LINESTREAM_CONFIG)")

	flag.StringVar(&cfg.InputPath, "input",
		getEnv("LINESTREAM_INPUT", "-"),
		"Input file, - for stdin (env: LINESTREAM_INPUT)")

	flag.StringVar(&cfg.InputPath, "i",
		getEnv("LINESTREAM_INPUT", "-"),
		"Input file, - for stdin (env: LINESTREAM_INPUT)")

	flag.StringVar(&cfg.Charset, "charset", "",
		"IANA charset of the input, empty for UTF-8")

	flag.StringVar(&cfg.OnMalformed, "on-malformed", "",
		"Malformed line policy: warn, fail")

	flag.StringVar(&cfg.Precision, "precision", "",
		"Timestamp precision: ns, us, ms, s")

	flag.IntVar(&cfg.MaxLineBytes, "max-line-bytes", 0,
		"Maximum physical line length in bytes, 0 for the default")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("LINESTREAM_LOG_LEVEL", ""),
		"Log level: debug, info, warn, error (env: LINESTREAM_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("LINESTREAM_LOG_FORMAT", ""),
		"Log format: json, text (env: LINESTREAM_LOG_FORMAT)")

	flag.IntVar(&cfg.MetricsPort, "metrics-port",
		getEnvInt("LINESTREAM_METRICS_PORT", 0),
		"Prometheus endpoint port, 0 to disable (env: LINESTREAM_METRICS_PORT)")

	flag.BoolVar(&cfg.PrintSchema, "print-schema", false,
		"Print the accumulated schema to stderr after the stream ends")

	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	flag.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")
	flag.BoolVar(&cfg.Validate, "validate", false, "Validate configuration and exit")

	flag.Usage = func() {
		printDetailedHelp()
	}

	flag.Parse()

	return cfg
}

func validateFlags(cfg *CLIConfig) error {
	// Skip validation for special flags
	if cfg.ShowVersion || cfg.ShowHelp {
		return nil
	}

	if cfg.ConfigPath != "" {
		if _, err := os.Stat(cfg.ConfigPath); err != nil {
			return fmt.Errorf("config file not found: %s", cfg.ConfigPath)
		}
	}

	if cfg.InputPath != "-" {
		if _, err := os.Stat(cfg.InputPath); err != nil {
			return fmt.Errorf("input file not found: %s", cfg.InputPath)
		}
	}

	if cfg.MetricsPort < 0 || cfg.MetricsPort > 65535 {
		return fmt.Errorf("invalid metrics port: %d", cfg.MetricsPort)
	}

	return nil
}

func printDetailedHelp() {
	_, _ = fmt.Fprintf(os.Stderr, `%s - Line Protocol to structured records

Usage: %s [options]

Reads InfluxDB Line Protocol from a file or stdin and writes one JSON
record per line to stdout.

Options:
`, appName, os.Args[0])
	flag.PrintDefaults()
	_, _ = fmt.Fprintf(os.Stderr, `
Examples:
  # Read a capture from stdin
  cat metrics.lp | %s

  # Abort on the first malformed line
  %s --input=metrics.lp --on-malformed=fail

  # Decode a legacy Latin-1 capture with second precision
  %s --input=old.lp --charset=ISO-8859-1 --precision=s

  # Run with a config file and environment overrides
  export LINESTREAM_CONFIG=/etc/linestream/reader.yaml
  export LINESTREAM_ON_MALFORMED=fail
  %s

Version: %s
Build: %s
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], Version, BuildTime)
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
