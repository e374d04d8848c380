package restitch

import (
	"context"
	"io"
	"log/slog"
)

// ConfigOption is a function pointer to implement the option pattern.
type ConfigOption func(*Config)

// Config holds the runtime options for discovery, analysis and extraction.
type Config struct {
	// logger stream for discovery and extraction
	logger logger

	// telemetryHook is a function pointer to consume telemetry data after a
	// finished extraction run
	telemetryHook TelemetryHook
}

// NewConfig creates a [Config] with default values and applies opts in an
// option pattern style.
func NewConfig(opts ...ConfigOption) *Config {
	// disable logging by default
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	config := &Config{
		logger: logger,
	}

	for _, opt := range opts {
		opt(config)
	}

	return config
}

// WithLogger options pattern function to set a custom logger.
func WithLogger(logger logger) ConfigOption {
	return func(c *Config) {
		c.logger = logger
	}
}

// WithTelemetryHook options pattern function to set a telemetry hook.
func WithTelemetryHook(hook TelemetryHook) ConfigOption {
	return func(c *Config) {
		c.telemetryHook = hook
	}
}

// Logger returns the configured logger.
func (c *Config) Logger() logger {
	return c.logger
}

// TelemetryHook returns the telemetry hook.
func (c *Config) TelemetryHook() TelemetryHook {
	if c.telemetryHook == nil {
		return noopTelemetryHook
	}
	return c.telemetryHook
}

// noopTelemetryHook is a no operation telemetry hook
func noopTelemetryHook(ctx context.Context, td *TelemetryData) {
	// noop
}

// ensureConfig falls back to the default configuration if c is nil, so the
// exported entry points accept a nil config.
func ensureConfig(c *Config) *Config {
	if c == nil {
		return NewConfig()
	}
	return c
}
