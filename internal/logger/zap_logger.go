package logger

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger wraps zap.Logger to implement Logger.
type ZapLogger struct {
	zap *zap.Logger
}

// NewZapLogger builds a zap logger from cfg. Unknown levels fall back to info
// and an empty output means stderr.
func NewZapLogger(cfg LoggerConfig) (*ZapLogger, error) {
	var zapConfig zap.Config

	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	if cfg.Format == "console" {
		zapConfig.Encoding = "console"
	} else {
		zapConfig.Encoding = "json"
	}

	output := cfg.Output
	if output == "" {
		output = "stderr"
	}
	zapConfig.OutputPaths = []string{output}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	if cfg.EnableSampling {
		zapConfig.Sampling = &zap.SamplingConfig{
			Initial:    cfg.SampleInitial,
			Thereafter: cfg.SampleThereafter,
		}
	} else {
		zapConfig.Sampling = nil
	}

	logger, err := zapConfig.Build(
		zap.AddCaller(),
		zap.AddCallerSkip(2),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	return &ZapLogger{zap: logger}, nil
}

// Wrap adapts an existing zap logger, typically one built on an observer core
// in tests.
func Wrap(z *zap.Logger) *ZapLogger {
	return &ZapLogger{zap: z}
}

func convertFields(fields []Field) []zap.Field {
	zf := make([]zap.Field, len(fields))
	for i, f := range fields {
		zf[i] = zapField(f)
	}
	return zf
}

func zapField(f Field) zap.Field {
	switch v := f.Value.(type) {
	case string:
		return zap.String(f.Key, v)
	case int:
		return zap.Int(f.Key, v)
	case int64:
		return zap.Int64(f.Key, v)
	case uint64:
		return zap.Uint64(f.Key, v)
	case float64:
		return zap.Float64(f.Key, v)
	case bool:
		return zap.Bool(f.Key, v)
	case time.Duration:
		return zap.Duration(f.Key, v)
	case error:
		return zap.NamedError(f.Key, v)
	case fmt.Stringer:
		return zap.Stringer(f.Key, v)
	}
	return zap.Any(f.Key, f.Value)
}

// write skips field conversion for entries the core would drop, which keeps
// per-tick debug calls cheap at info level. A Fatal entry exits after writing.
func (l *ZapLogger) write(lvl zapcore.Level, msg string, fields []Field) {
	if ce := l.zap.Check(lvl, msg); ce != nil {
		ce.Write(convertFields(fields)...)
	}
}

func (l *ZapLogger) Debug(msg string, fields ...Field) { l.write(zapcore.DebugLevel, msg, fields) }
func (l *ZapLogger) Info(msg string, fields ...Field)  { l.write(zapcore.InfoLevel, msg, fields) }
func (l *ZapLogger) Warn(msg string, fields ...Field)  { l.write(zapcore.WarnLevel, msg, fields) }
func (l *ZapLogger) Error(msg string, fields ...Field) { l.write(zapcore.ErrorLevel, msg, fields) }
func (l *ZapLogger) Fatal(msg string, fields ...Field) { l.write(zapcore.FatalLevel, msg, fields) }

// With returns a child logger. A "component" field also becomes the zap
// logger name, so console output reads "match" or "platform.audio" next to
// the level.
func (l *ZapLogger) With(fields ...Field) Logger {
	z := l.zap
	for _, f := range fields {
		if name, ok := f.Value.(string); ok && f.Key == componentKey {
			z = z.Named(name)
		}
	}
	return &ZapLogger{zap: z.With(convertFields(fields)...)}
}

func (l *ZapLogger) Sync() error {
	return l.zap.Sync()
}
