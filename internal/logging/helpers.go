package logging

import (
	"context"
	"log/slog"
)

// Info logs through the request-scoped logger, falling back to logger. No-op when neither is set.
func Info(ctx context.Context, logger *slog.Logger, msg string, args ...any) {
	if l := FromContext(ctx, logger); l != nil {
		l.InfoContext(ctx, msg, args...)
	}
}

// Warn logs a warning, attaching err when present.
func Warn(ctx context.Context, logger *slog.Logger, msg string, err error, args ...any) {
	l := FromContext(ctx, logger)
	if l == nil {
		return
	}
	if err != nil {
		args = append(args, "error", err)
	}
	l.WarnContext(ctx, msg, args...)
}

// Error logs an error, attaching err when present.
func Error(ctx context.Context, logger *slog.Logger, msg string, err error, args ...any) {
	l := FromContext(ctx, logger)
	if l == nil {
		return
	}
	if err != nil {
		args = append(args, "error", err)
	}
	l.ErrorContext(ctx, msg, args...)
}
