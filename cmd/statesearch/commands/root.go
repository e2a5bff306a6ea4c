// Package commands implements the statesearch command tree.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pdrpinto/search/internal/telemetry"
	"github.com/spf13/cobra"
)

var (
	logLevel       string
	logFormat      string
	traceExporter  string
	metricExporter string
	otlpEndpoint   string
	otlpInsecure   bool
)

// logger is set up by the root command before any subcommand runs.
var logger = slog.New(slog.DiscardHandler)

var shutdownTelemetry func(context.Context) error

var rootCmd = &cobra.Command{
	Use:   "statesearch",
	Short: "Solve state-space search problems",
	Long: `statesearch loads a graph or grid problem from a YAML file and solves it
with one of the uninformed or informed search strategies.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	defaults := telemetry.DefaultConfig()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "text", "Log format: text, json")
	flags.StringVar(&traceExporter, "trace-exporter", defaults.TraceExporter, "Trace exporter: none, stdout, otlp")
	flags.StringVar(&metricExporter, "metric-exporter", defaults.MetricExporter, "Metric exporter: none, stdout")
	flags.StringVar(&otlpEndpoint, "otlp-endpoint", defaults.OTLPEndpoint, "OTLP gRPC endpoint for traces")
	flags.BoolVar(&otlpInsecure, "otlp-insecure", defaults.OTLPInsecure, "Disable TLS for OTLP")
}

func setup(cmd *cobra.Command, _ []string) error {
	l, err := newLogger(cmd.ErrOrStderr(), logLevel, logFormat)
	if err != nil {
		return err
	}
	logger = l

	cfg := telemetry.DefaultConfig()
	cfg.TraceExporter = traceExporter
	cfg.MetricExporter = metricExporter
	cfg.OTLPEndpoint = otlpEndpoint
	cfg.OTLPInsecure = otlpInsecure
	cfg.Writer = cmd.ErrOrStderr()

	shutdown, err := telemetry.Init(commandContext(cmd), cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	shutdownTelemetry = shutdown
	return nil
}

func teardown(cmd *cobra.Command, _ []string) error {
	if shutdownTelemetry == nil {
		return nil
	}
	shutdown := shutdownTelemetry
	shutdownTelemetry = nil
	if err := shutdown(commandContext(cmd)); err != nil {
		return fmt.Errorf("failed to flush telemetry: %w", err)
	}
	return nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unsupported log format: %s (use 'text' or 'json')", format)
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}
