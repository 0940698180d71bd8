// Package logger is the structured logging facade used across the game. It
// hides zap behind a small interface so packages can take a Logger without
// importing zap, and tests can swap in an observer or a no-op.
package logger

import "go.uber.org/zap"

// Logger is satisfied by *ZapLogger.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)
	With(fields ...Field) Logger
	Sync() error
}

// Field is a structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Err attaches an error under the conventional "error" key.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

const componentKey = "component"

// Component tags every entry of the returned logger with the subsystem name.
func Component(l Logger, name string) Logger {
	return l.With(Field{Key: componentKey, Value: name})
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return Wrap(zap.NewNop())
}
