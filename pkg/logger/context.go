package logger

import (
	"context"
	"log/slog"
)

// contextKey is used to store the logger in context
type contextKey string

const loggerKey contextKey = "logger"

// ToContext stores a logger in the context
func ToContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger from context.
// If no logger is found, returns the default logger.
// This ensures we never return nil.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With is a convenience method that extracts the logger from context,
// adds attributes, and returns both the new logger and updated context.
// This makes it easy to add attributes in middleware:
//
//	logger, ctx := logger.With(ctx, "uid", uid, "email", email)
//	return handler.ServeHTTP(w, r.WithContext(ctx))
func With(ctx context.Context, args ...any) (*slog.Logger, context.Context) {
	logger := FromContext(ctx).With(args...)
	return logger, ToContext(ctx, logger)
}
