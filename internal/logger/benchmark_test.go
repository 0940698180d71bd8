package logger

import (
	"os"
	"testing"

	"go.uber.org/zap"
)

func discardConfig(level string, sampling bool) LoggerConfig {
	return LoggerConfig{
		Level:            level,
		Format:           "json",
		Output:           os.DevNull,
		EnableSampling:   sampling,
		SampleInitial:    100,
		SampleThereafter: 1000,
	}
}

// BenchmarkZapLogger_TickDebug measures the per-frame debug entry the match
// system writes while a volley is in flight.
func BenchmarkZapLogger_TickDebug(b *testing.B) {
	logger, _ := NewZapLogger(discardConfig("debug", false))
	defer logger.Sync()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		logger.Debug("tick",
			F("frame", i),
			F("delta_ms", 16.67),
			F("bounces", 0),
		)
	}
}

func BenchmarkZapLogger_TickDebugSampled(b *testing.B) {
	logger, _ := NewZapLogger(discardConfig("debug", true))
	defer logger.Sync()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		logger.Debug("tick",
			F("frame", i),
			F("delta_ms", 16.67),
			F("bounces", 0),
		)
	}
}

// BenchmarkZapLogger_TickFiltered is the common production case: debug
// entries below the configured level.
func BenchmarkZapLogger_TickFiltered(b *testing.B) {
	logger, _ := NewZapLogger(discardConfig("info", true))
	defer logger.Sync()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		logger.Debug("tick", F("frame", i))
	}
}

func BenchmarkZapLogger_ScoreWithContext(b *testing.B) {
	logger, _ := NewZapLogger(discardConfig("info", false))
	defer logger.Sync()

	matchLogger := Component(logger, "match").With(F("match_id", "5b0e6a52"))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		matchLogger.Info("point scored",
			F("scorer", 1+i%2),
			F("p1", i%5),
			F("p2", (i+1)%5),
		)
	}
}

func BenchmarkZapLogger_Nop(b *testing.B) {
	logger := &ZapLogger{zap: zap.NewNop()}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		logger.Info("point scored", F("scorer", 1))
	}
}
