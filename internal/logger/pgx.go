package logger

import (
	"os"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// NewPgxLogger builds a dedicated logger for SQL query tracing.
//
// It writes console output (queries and bind parameters are unreadable
// as raw JSON) and inherits the application's global level.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel maps a zerolog level onto pgx's tracelog levels.
//
// tracelog is more granular than zerolog on the low end; anything at
// or below debug turns full query logging on.
func GetPgxTraceLogLevel(level zerolog.Level) int {
	switch {
	case level <= zerolog.DebugLevel:
		return int(tracelog.LogLevelDebug)
	case level == zerolog.InfoLevel:
		return int(tracelog.LogLevelInfo)
	case level == zerolog.WarnLevel:
		return int(tracelog.LogLevelWarn)
	default:
		return int(tracelog.LogLevelError)
	}
}
