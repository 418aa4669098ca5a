// Package diag provides the library's one allowed diagnostic channel.
//
// libfaultinj never logs under normal operation (every interceptor call is
// silent unless it delays or fails as configured). The single exception
// is the resolver's fatal abort when libc or one of its symbols cannot be
// found — the process cannot make forward progress, so it must say why
// before it dies. This package exists so that message goes out through a
// real structured logger, routed through log/slog, rather than a bare
// fmt.Fprintln.
package diag

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	defaultLogger *slog.Logger
	loggerMu      sync.RWMutex
)

func init() {
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Config holds the logger configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level slog.Level
	// Format is the output format ("text" or "json").
	Format string
	// Output is the log output destination.
	Output io.Writer
}

// NewLogger creates a new structured logger with the given configuration.
func NewLogger(cfg Config) *slog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	} else {
		handler = slog.NewTextHandler(cfg.Output, opts)
	}

	return slog.New(handler)
}

// SetDefault sets the default global logger.
func SetDefault(logger *slog.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	defaultLogger = logger
}

// Default returns the default global logger.
func Default() *slog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return defaultLogger
}

// Fatal logs msg at error level with args, then terminates the process.
// This is the only call in the library that may end the process, and it
// exists solely for the resolver's "cannot find libc" / "cannot find
// symbol" paths: those failures are unrecoverable, so the process must
// report why before exiting rather than limping on with no libc to call.
func Fatal(msg string, args ...any) {
	Default().Error(msg, args...)
	os.Exit(2)
}
