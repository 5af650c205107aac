package middleware

import (
	"context"

	"github.com/deppfellow/microblog/internal/logger"
	"github.com/deppfellow/microblog/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerKey is used as the key for storing the request-scoped logger.
const LoggerKey = "logger"

// ContextEnhancer enriches each request with a request-scoped logger
// carrying correlation fields: request_id, method, path, ip, and the
// trace/span ids when a New Relic transaction exists.
//
// The logger is stored in both the Echo context (for handlers) and the
// Go request context (for layers that only see context.Context).
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer creates a new ContextEnhancer using the app container.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns the Echo middleware. It assumes the RequestID
// middleware ran earlier in the chain.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := GetRequestID(c)

			contextLogger := ce.server.Logger.With().
				Str("request_id", requestID).
				Str("method", c.Request().Method).
				Str("path", c.Path()). // route template (e.g. "/users/:id"), not raw URL
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			c.Set(LoggerKey, &contextLogger)

			ctx := context.WithValue(c.Request().Context(), LoggerKey, &contextLogger) //nolint:staticcheck // string key matches the Echo context key
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLogger retrieves the request-scoped logger from Echo context.
// If EnhanceContext didn't run, it returns a no-op logger so callers
// never dereference nil.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
