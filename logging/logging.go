// Package logging provides structured logging for the screening API using
// log/slog, with a global service and an HTTP request-logging middleware.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Service wraps the configured slog logger.
type Service struct {
	Logger *slog.Logger
}

// DefaultService is the process-wide logging service. Package-level helpers
// fall back to a stderr text logger until Init has run, so early startup
// failures are still visible.
var DefaultService *Service

// Init builds the global logger. Dev environments get human-readable text
// output; everything else gets JSON for log shipping.
func Init(level, env string) {
	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	if env == "dev" || env == "test" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	DefaultService = &Service{Logger: slog.New(handler)}
	slog.SetDefault(DefaultService.Logger)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger returns the configured logger, or a plain stderr logger when
// Init has not run yet.
func Logger() *slog.Logger {
	if DefaultService != nil && DefaultService.Logger != nil {
		return DefaultService.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// Package-level functions for direct access

func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Logger().Error(msg, args...)
}
