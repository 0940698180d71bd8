package logger

// LoggerConfig defines logging configuration. It is embedded in the game
// config under the "log" key and can be overridden from PONG_LOG_* variables.
type LoggerConfig struct {
	Level            string `yaml:"level" env:"PONG_LOG_LEVEL"`
	Format           string `yaml:"format" env:"PONG_LOG_FORMAT"` // json or console
	Output           string `yaml:"output" env:"PONG_LOG_OUTPUT"` // stderr, stdout or a file path
	EnableSampling   bool   `yaml:"enable_sampling" env:"PONG_LOG_SAMPLING"`
	SampleInitial    int    `yaml:"sample_initial" env:"PONG_LOG_SAMPLE_INITIAL"`
	SampleThereafter int    `yaml:"sample_thereafter" env:"PONG_LOG_SAMPLE_THEREAFTER"`
	Development      bool   `yaml:"development" env:"PONG_LOG_DEVELOPMENT"`
}

// DefaultConfig logs JSON to stderr at info level. Per-tick debug entries are
// sampled so a long volley cannot flood the output.
func DefaultConfig() LoggerConfig {
	return LoggerConfig{
		Level:            "info",
		Format:           "json",
		Output:           "stderr",
		EnableSampling:   true,
		SampleInitial:    100,
		SampleThereafter: 1000,
		Development:      false,
	}
}

func DevelopmentConfig() LoggerConfig {
	return LoggerConfig{
		Level:       "debug",
		Format:      "console",
		Output:      "stderr",
		Development: true,
	}
}
