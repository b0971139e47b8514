// Package logging builds the slog loggers used by the dircoll command.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/jmgilman/go/collection/errors"
)

// LogLevel represents different logging levels
type LogLevel int

// LogLevelDebug represents debug logging level
const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String returns the lowercase level name.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel converts a level name to a LogLevel. Matching ignores case and
// "warning" is accepted for "warn".
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug, nil
	case "info", "":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	}
	return 0, errors.WithContext(
		errors.New(errors.CodeInvalidInput, "unknown log level"),
		"level", s)
}

// LogConfig holds configuration for a logger.
type LogConfig struct {
	// Level sets the minimum log level
	Level LogLevel
	// JSON selects the JSON handler instead of the text handler
	JSON bool
	// EnableCallerInfo includes file and line number in logs
	EnableCallerInfo bool
}

// DefaultLogConfig returns a default logging configuration.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level: LogLevelWarn,
	}
}

// NewLogger creates a structured logger writing to w.
func NewLogger(w io.Writer, config LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     config.Level.slogLevel(),
		AddSource: config.EnableCallerInfo,
	}

	var handler slog.Handler
	if config.JSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// NewNopLogger creates a logger that discards all messages.
func NewNopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
