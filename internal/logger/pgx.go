package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// NewPgxLogger builds a dedicated logger for pgx query tracing.
//
// SQL logging is noisy, so it gets its own console logger with a "pgx"
// component field instead of sharing the main application logger. Only wired
// in the local environment.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel maps the application's zerolog level onto pgx
// tracelog's numeric levels.
//
// tracelog levels: none=1, error=2, warn=3, info=4, debug=5, trace=6.
func GetPgxTraceLogLevel(level zerolog.Level) int {
	switch level {
	case zerolog.TraceLevel:
		return 6
	case zerolog.DebugLevel:
		return 5
	case zerolog.InfoLevel:
		return 4
	case zerolog.WarnLevel:
		return 3
	case zerolog.ErrorLevel:
		return 2
	default:
		return 1
	}
}
