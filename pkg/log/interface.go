// Package log provides a structured logging interface for the photoswitch
// data-preparation pipeline.
//
// The interface is slog-compatible so implementations can be swapped
// without touching call sites. The default implementation emits JSON via
// log/slog with stack traces extracted from cockroachdb/errors; a
// TestLogger implementation captures output for assertions, which is how
// the PCA variance diagnostic is verified in tests.
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with log/slog.
// Fields are alternating key-value pairs, as in slog.
type Logger interface {
	// Debug logs detailed diagnostic information.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs potentially problematic conditions that do not stop
	// the operation.
	Warn(msg string, fields ...any)

	// Error logs error conditions. If an error value appears among the
	// fields under ErrAttrKey, its stack trace is attached when the
	// backend supports it.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated on
	// every subsequent message.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, value-compatible with slog.Level.
type Level int

// Standard logging levels.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
