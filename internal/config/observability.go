package config

import (
	"fmt"
	"time"
)

// ObservabilityConfig groups all configuration related to telemetry and
// runtime visibility: logging settings, APM/tracing provider settings
// (New Relic here), and dependency health check settings.
//
// It is embedded under Config.Observability and is optional at the root
// level (pointer in Config). If omitted, defaults are injected.
type ObservabilityConfig struct {
	// ServiceName identifies this service in logs/traces/APM dashboards.
	// Hardcoded per service to avoid people "configuring" it into chaos.
	ServiceName string `koanf:"service_name" validate:"required"`

	// Environment is a label used to split telemetry by environment
	// (production, staging, development, etc.).
	Environment string `koanf:"environment" validate:"required"`

	// Logging config controls structured logger behavior.
	Logging LoggingConfig `koanf:"logging" validate:"required"`

	// NewRelic config controls APM and tracing features.
	NewRelic NewRelicConfig `koanf:"new_relic"`

	// HealthChecks config controls periodic dependency health checks.
	HealthChecks HealthChecksConfig `koanf:"health_checks" validate:"required"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level" validate:"required"`

	// Format selects the output format for logs ("json" or "console").
	Format string `koanf:"format" validate:"required"`

	// SlowQueryThreshold is a duration beyond which queries are considered
	// slow and flagged in logs. Supply parseable duration strings like
	// "100ms" or "1s".
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`
}

// NewRelicConfig holds configuration for New Relic APM and tracing.
// An empty LicenseKey means "not configured"; the agent stays off.
type NewRelicConfig struct {
	LicenseKey string `koanf:"license_key"`

	// AppLogForwardingEnabled forwards application logs to New Relic.
	AppLogForwardingEnabled bool `koanf:"app_log_forwarding_enabled"`

	// DistributedTracingEnabled traces requests across service boundaries.
	DistributedTracingEnabled bool `koanf:"distributed_tracing_enabled"`

	// DebugLogging enables debug output for the agent/integration.
	// Usually off in production to avoid noisy logs and format pollution.
	DebugLogging bool `koanf:"debug_logging"`
}

// HealthChecksConfig controls periodic checks for dependencies.
type HealthChecksConfig struct {
	// Enabled toggles health checking logic entirely.
	Enabled bool `koanf:"enabled"`

	// Interval is how frequently checks run.
	Interval time.Duration `koanf:"interval" validate:"min=1s"`

	// Timeout is the max time allowed for a check run before it is
	// considered failed.
	Timeout time.Duration `koanf:"timeout" validate:"min=1s"`

	// Checks is a list of check names to run (e.g. database, redis).
	Checks []string `koanf:"checks"`
}

// DefaultObservabilityConfig provides a safe set of defaults.
// Used when Config.Observability is nil (not provided via env/config).
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		// Service/environment defaults are overwritten in Load().
		ServiceName: "microblog",
		Environment: "development",

		Logging: LoggingConfig{
			Level:              "info",
			Format:             "json",
			SlowQueryThreshold: 100 * time.Millisecond,
		},

		NewRelic: NewRelicConfig{
			LicenseKey:                "",
			AppLogForwardingEnabled:   true,
			DistributedTracingEnabled: true,
			DebugLogging:              false, // off by default to avoid mixed log formats
		},

		HealthChecks: HealthChecksConfig{
			Enabled:  true,
			Interval: 30 * time.Second,
			Timeout:  5 * time.Second,
			Checks:   []string{"database", "redis"},
		},
	}
}

// Validate applies custom validation rules that go beyond struct tags:
// enum membership for log levels and cross-field sanity checks.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}

	if c.Logging.SlowQueryThreshold < 0 {
		return fmt.Errorf("logging slow_query_threshold must be non-negative")
	}

	return nil
}

// GetLogLevel returns the effective log level to use at runtime,
// defaulting by environment when no level is set.
func (c *ObservabilityConfig) GetLogLevel() string {
	switch c.Environment {
	case "production":
		if c.Logging.Level == "" {
			return "info"
		}
	case "development":
		if c.Logging.Level == "" {
			return "debug"
		}
	}
	return c.Logging.Level
}

// IsProduction reports whether the application is running in production mode.
func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}
