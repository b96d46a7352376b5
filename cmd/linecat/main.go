// Package main implements linecat, a command-line reader that turns
// InfluxDB Line Protocol into a stream of JSON records on stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/c360/linestream/config"
	"github.com/c360/linestream/metric"
	"github.com/c360/linestream/reader"
	"github.com/c360/linestream/record"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "linecat"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("linecat failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	cliCfg := parseFlags()
	if err := validateFlags(cliCfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil
	}
	if cliCfg.ShowHelp {
		printDetailedHelp()
		return nil
	}

	cfg, err := loadConfig(cliCfg)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(logger)

	if cliCfg.Validate {
		slog.Info("configuration is valid")
		return nil
	}

	opts, err := cfg.ReaderOptions()
	if err != nil {
		return err
	}
	opts.Logger = logger

	if cfg.Metrics.Enabled {
		registry := metric.NewRegistry()
		opts.Metrics = registry

		server := metric.NewServer(cfg.Metrics.Port, cfg.Metrics.Path, registry)
		if err := server.Start(); err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Stop(ctx)
		}()
		logger.Info("metrics endpoint started", "port", cfg.Metrics.Port, "path", cfg.Metrics.Path)
	}

	source, err := openInput(cliCfg.InputPath)
	if err != nil {
		return err
	}

	r, err := reader.New(source, opts)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	logger.Info("reading line protocol",
		"input", cliCfg.InputPath,
		"session", r.Session(),
		"policy", r.Policy().String(),
		"precision", r.Precision().String())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := emit(ctx, r, os.Stdout); err != nil {
		return err
	}

	if cliCfg.PrintSchema {
		printSchema(os.Stderr, r.Schema())
	}
	return nil
}

// loadConfig layers defaults, an optional config file, environment
// overrides and finally explicit flags.
func loadConfig(cliCfg *CLIConfig) (*config.Config, error) {
	loader := config.NewLoader()
	// Validated below, after flag overrides are applied.
	loader.EnableValidation(false)
	if cliCfg.ConfigPath != "" {
		loader.AddLayer(cliCfg.ConfigPath)
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	if cliCfg.Charset != "" {
		cfg.Charset = cliCfg.Charset
	}
	if cliCfg.OnMalformed != "" {
		cfg.OnMalformed = cliCfg.OnMalformed
	}
	if cliCfg.Precision != "" {
		cfg.Precision = cliCfg.Precision
	}
	if cliCfg.MaxLineBytes > 0 {
		cfg.MaxLineBytes = cliCfg.MaxLineBytes
	}
	if cliCfg.LogLevel != "" {
		cfg.Logging.Level = cliCfg.LogLevel
	}
	if cliCfg.LogFormat != "" {
		cfg.Logging.Format = cliCfg.LogFormat
	}
	if cliCfg.MetricsPort > 0 {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Port = cliCfg.MetricsPort
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openInput resolves the input path. The reader takes ownership of the
// returned source and closes it when the stream ends.
func openInput(path string) (io.Reader, error) {
	if path == "-" {
		return os.Stdin, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	return f, nil
}

// emit writes one JSON record per line until the stream ends or the
// context is cancelled.
func emit(ctx context.Context, r *reader.Reader, out io.Writer) error {
	enc := json.NewEncoder(out)
	for {
		select {
		case <-ctx.Done():
			slog.Info("interrupted, stopping read")
			return nil
		default:
		}

		rec, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}
}

func printSchema(w io.Writer, schema record.Schema) {
	_, _ = fmt.Fprintf(w, "schema (%d columns):\n", schema.Len())
	for _, col := range schema.Columns() {
		nullable := ""
		if col.Nullable {
			nullable = " nullable"
		}
		_, _ = fmt.Fprintf(w, "  %-20s %-8s %s%s\n", col.Name, col.Type, col.Kind, nullable)
	}
}
