// ABOUTME: Structured logging for the MCP server via log/slog.
// ABOUTME: Logs go to stderr because stdout carries the MCP wire protocol.
package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"sync/atomic"
)

var verbose atomic.Bool

// Setup configures the default slog logger. When v is true, debug records
// are emitted as well.
func Setup(v bool) {
	verbose.Store(v)

	level := slog.LevelInfo
	if v {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// IsVerbose reports whether debug logging is enabled.
func IsVerbose() bool {
	return verbose.Load()
}

// Debug logs at debug level with key-value pairs.
func Debug(msg string, args ...any) {
	slog.Debug(msg, args...)
}

// Info logs at info level with key-value pairs.
func Info(msg string, args ...any) {
	slog.Info(msg, args...)
}

// Warn logs at warn level with key-value pairs.
func Warn(msg string, args ...any) {
	slog.Warn(msg, args...)
}

// Error logs at error level with key-value pairs.
func Error(msg string, args ...any) {
	slog.Error(msg, args...)
}

// ToJSON renders v as compact JSON for verbose request/response logging.
func ToJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "<unmarshalable>"
	}
	return string(b)
}
