// Package log provides a structured logging interface for the Nereid client.
//
// The interface is intentionally minimal and slog-shaped: leveled methods with
// variadic key-value fields, plus With for contextual child loggers. The
// default implementation is backed by zerolog; a buffer-backed TestLogger is
// provided for tests.
package log

import "context"

// Logger defines a structured logging interface with leveled methods and
// key-value field pairs. Implementations must be safe for concurrent use.
type Logger interface {
	// Debug logs detailed diagnostic information.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs potentially problematic situations that do not stop
	// execution.
	Warn(msg string, fields ...any)

	// Error logs error conditions. If the first field is an error value it
	// is attached as a structured error attribute.
	Error(msg string, fields ...any)

	// With returns a child Logger with the given fields pre-populated on
	// every subsequent record.
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

// Common attribute keys used across the client so that log records remain
// uniform and filterable.
const (
	// ComponentKey identifies the package emitting the record.
	ComponentKey = "component"

	// OperationKey names the client operation, e.g. "eval", "submit",
	// "fetch", "varimp".
	OperationKey = "operation"

	// ModelKey holds the remote model key involved in an operation.
	ModelKey = "model.key"

	// FrameKey holds the remote frame key involved in an operation.
	FrameKey = "frame.key"

	// AlgoKey holds the algorithm name of a training submission.
	AlgoKey = "ml.algo"
)
