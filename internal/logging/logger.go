// SPDX-License-Identifier: MIT

package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/mallnav/internal/config"
)

// Logger wraps slog.Logger with mallnav default fields.
//
// Thread Safety:
//   - All methods are safe for concurrent use from multiple goroutines.
type Logger struct {
	*slog.Logger
}

// New creates a Logger from cfg. Records go to stdout when cfg.Output is
// "stdout" and to stderr otherwise.
func New(cfg config.LoggingConfig, version string, stdout, stderr io.Writer) *Logger {
	output := stderr
	if strings.EqualFold(cfg.Output, "stdout") {
		output = stdout
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	handler = handler.WithAttrs([]slog.Attr{
		slog.String("service", "mallnav"),
		slog.String("version", version),
	})

	return &Logger{
		Logger: slog.New(handler),
	}
}

// parseLevel converts a string log level to slog.Level.
// Unrecognised values yield info.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// With returns a new Logger with additional default attributes.
//
// Example:
//
//	buildLogger := logger.With("component", "builder")
//	buildLogger.Info("routing graph built") // Includes component=builder
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger: l.Logger.With(args...),
	}
}
