package logger

import "context"

type loggerKeyType struct{}

var loggerKey = loggerKeyType{}

// WithLogger adds logger to context.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger stored by WithLogger, or a no-op logger.
func FromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerKey).(Logger); ok {
		return logger
	}
	return NewNop()
}
