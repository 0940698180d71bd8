package loader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"pong/internal/loader/schema"
	"pong/internal/logger"
)

// EnvError reports an environment override that could not be parsed.
type EnvError struct {
	Name  string
	Value string
	Err   error
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("invalid %s=%q: %v", e.Name, e.Value, e.Err)
}

func (e *EnvError) Unwrap() error {
	return e.Err
}

func applyEnv(cfg *schema.Config) error {
	if v := os.Getenv("PONG_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return &EnvError{Name: "PONG_SEED", Value: v, Err: err}
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("PONG_SOUND"); v != "" {
		switch strings.ToLower(v) {
		case "off", "false", "0":
			cfg.Audio.Enabled = false
		case "on", "true", "1":
			cfg.Audio.Enabled = true
		default:
			cfg.Audio.Enabled = true
			cfg.Audio.Bounce = v
		}
	}
	if v := os.Getenv("PONG_REPLAY"); v != "" {
		cfg.Replay.Record = v
	}
	if v := os.Getenv("PONG_SCALE"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return &EnvError{Name: "PONG_SCALE", Value: v, Err: err}
		}
		cfg.Window.Scale = scale
	}
	cfg.Log = logger.ApplyEnv(cfg.Log)
	return nil
}
