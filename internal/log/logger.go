package log

import (
	"context"
	"log/slog"

	"github.com/plannerx/plx/internal/errors"
)

// Logger provides structured logging with slog
type Logger struct {
	slog   *slog.Logger
	config Config
}

// New creates a new Logger with the given configuration
func New(config Config) *Logger {
	opts := &slog.HandlerOptions{
		Level:     config.Level.ToSlogLevel(),
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	switch config.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(config.Output.Writer(), opts)
	case FormatText:
		handler = slog.NewTextHandler(config.Output.Writer(), opts)
	default:
		handler = slog.NewJSONHandler(config.Output.Writer(), opts)
	}

	return &Logger{
		slog:   slog.New(handler),
		config: config,
	}
}

// Default creates a logger with default configuration
func Default() *Logger {
	return New(DefaultConfig())
}

// With returns a new Logger with the given attributes added to all log entries
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		slog:   l.slog.With(args...),
		config: l.config,
	}
}

// WithError adds error details to the logger.
// If the error is a PlxError, it adds error_code and suggestions.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}

	if plxErr, ok := err.(*errors.PlxError); ok {
		args := []any{
			"error", plxErr.Message,
			"error_code", string(plxErr.Code),
		}

		if len(plxErr.Suggestions) > 0 {
			args = append(args, "suggestions", plxErr.Suggestions)
		}

		if plxErr.Cause != nil {
			args = append(args, "cause", plxErr.Cause.Error())
		}

		return l.With(args...)
	}

	return l.With("error", err.Error())
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

// DebugContext logs a debug message with context
func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.slog.DebugContext(ctx, msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

// InfoContext logs an info message with context
func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.slog.InfoContext(ctx, msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	l.slog.Error(msg, args...)
}

// Enabled returns whether the logger is enabled for the given level
func (l *Logger) Enabled(ctx context.Context, level Level) bool {
	return l.slog.Enabled(ctx, level.ToSlogLevel())
}

// Config returns the logger configuration
func (l *Logger) Config() Config {
	return l.config
}
