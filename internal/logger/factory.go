package logger

import (
	"os"
	"strconv"
	"strings"
)

// NewLoggerFromEnv builds a logger from defaults plus PONG_* variables. It is
// used before a config file has been read.
func NewLoggerFromEnv() (Logger, error) {
	return NewZapLogger(ApplyEnv(baseConfig()))
}

// NewLoggerWithComponent is NewLoggerFromEnv with a component field pre-set.
func NewLoggerWithComponent(component string) (Logger, error) {
	l, err := NewLoggerFromEnv()
	if err != nil {
		return nil, err
	}
	return Component(l, component), nil
}

// baseConfig picks development defaults unless PONG_ENV=production.
func baseConfig() LoggerConfig {
	if strings.ToLower(os.Getenv("PONG_ENV")) == "production" {
		return DefaultConfig()
	}
	return DevelopmentConfig()
}

// ApplyEnv overrides cfg with any PONG_LOG_* variable that is set.
func ApplyEnv(cfg LoggerConfig) LoggerConfig {
	if level := os.Getenv("PONG_LOG_LEVEL"); level != "" {
		cfg.Level = level
	}
	if format := os.Getenv("PONG_LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	if output := os.Getenv("PONG_LOG_OUTPUT"); output != "" {
		cfg.Output = output
	}
	if sampling := os.Getenv("PONG_LOG_SAMPLING"); sampling != "" {
		cfg.EnableSampling = strings.ToLower(sampling) == "true"
	}
	if initial := os.Getenv("PONG_LOG_SAMPLE_INITIAL"); initial != "" {
		if val, err := strconv.Atoi(initial); err == nil {
			cfg.SampleInitial = val
		}
	}
	if thereafter := os.Getenv("PONG_LOG_SAMPLE_THEREAFTER"); thereafter != "" {
		if val, err := strconv.Atoi(thereafter); err == nil {
			cfg.SampleThereafter = val
		}
	}
	if dev := os.Getenv("PONG_LOG_DEVELOPMENT"); dev != "" {
		cfg.Development = strings.ToLower(dev) == "true"
	}
	return cfg
}
