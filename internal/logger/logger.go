// Package logger configures the application's logging,
// monitoring, and observability.
//
// It uses *ZeroLog* for logging and integrates with
// *New Relic* to instrument the codebase, forwarding logs,
// metrics, and traces for debugging.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/deppfellow/microblog/internal/config"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService wraps the optional New Relic application instance.
//
// When New Relic is disabled (no license key), the service still exists
// but GetApplication returns nil; every consumer treats nil as "no APM".
type LoggerService struct {
	nrApp *newrelic.Application
}

// GetApplication returns the New Relic application, or nil when APM is off.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	if ls == nil {
		return nil
	}
	return ls.nrApp
}

// New builds the application logger and the observability service.
//
// Behavior:
//   - Parse the configured level; logs below it are dropped.
//   - "console" format writes human-friendly output, "json" writes raw JSON.
//   - If a New Relic license key is configured, start the agent and route
//     logs through zerologWriter so they are forwarded with trace context.
func New(cfg *config.Config) (*zerolog.Logger, *LoggerService, error) {
	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		return nil, nil, fmt.Errorf("parsing log level: %w", err)
	}

	service := &LoggerService{}

	var out io.Writer = os.Stdout
	if cfg.Observability.NewRelic.LicenseKey != "" {
		nrApp, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.Observability.ServiceName),
			newrelic.ConfigLicense(cfg.Observability.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(cfg.Observability.NewRelic.DistributedTracingEnabled),
			newrelic.ConfigAppLogForwardingEnabled(cfg.Observability.NewRelic.AppLogForwardingEnabled),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("initializing new relic application: %w", err)
		}
		service.nrApp = nrApp

		// zerologWriter decorates each log line with linking metadata so
		// New Relic can correlate logs with transactions.
		w := zerologWriter.New(os.Stdout, nrApp)
		out = &w
	}

	if cfg.Observability.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	log := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()

	return &log, service, nil
}

// WithTraceContext returns a logger enriched with trace.id and span.id
// from the current New Relic transaction, so log lines can be joined
// with distributed traces.
func WithTraceContext(log zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return log
	}
	md := txn.GetTraceMetadata()
	builder := log.With()
	if md.TraceID != "" {
		builder = builder.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		builder = builder.Str("span.id", md.SpanID)
	}
	return builder.Logger()
}
