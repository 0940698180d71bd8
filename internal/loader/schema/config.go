package schema

import (
	"fmt"
	"time"

	"pong/internal/logger"
)

// Config is the top-level layout of pong.yaml. Match rules are not part of it.
type Config struct {
	Window WindowConfig        `yaml:"window"`
	Seed   uint64              `yaml:"seed"`
	Audio  AudioConfig         `yaml:"audio"`
	Replay ReplayConfig        `yaml:"replay"`
	Keys   KeyBindings         `yaml:"keys"`
	Log    logger.LoggerConfig `yaml:"log"`
}

type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Bounce  string  `yaml:"bounce"`
	Volume  float64 `yaml:"volume"`
	// MinInterval drops bounce sounds that arrive closer together than this.
	MinInterval time.Duration `yaml:"min_interval"`
	// Workers bounds the playback pool.
	Workers int `yaml:"workers"`
}

type ReplayConfig struct {
	// Record is the path the session replay is written to on exit. Empty disables recording.
	Record string `yaml:"record"`
}

// KeyBindings maps each action to a key name as reported by the keyboard
// backend (W, ArrowUp, Space, ...).
type KeyBindings struct {
	P1Up    string `yaml:"p1_up"`
	P1Down  string `yaml:"p1_down"`
	P2Up    string `yaml:"p2_up"`
	P2Down  string `yaml:"p2_down"`
	Confirm string `yaml:"confirm"`
	Quit    string `yaml:"quit"`
}

// Fields lists the bindings with their yaml paths, in a stable order.
func (k KeyBindings) Fields() []Binding {
	return []Binding{
		{Field: "keys.p1_up", Key: k.P1Up},
		{Field: "keys.p1_down", Key: k.P1Down},
		{Field: "keys.p2_up", Key: k.P2Up},
		{Field: "keys.p2_down", Key: k.P2Down},
		{Field: "keys.confirm", Key: k.Confirm},
		{Field: "keys.quit", Key: k.Quit},
	}
}

type Binding struct {
	Field string
	Key   string
}

func DefaultKeys() KeyBindings {
	return KeyBindings{
		P1Up:    "W",
		P1Down:  "S",
		P2Up:    "ArrowUp",
		P2Down:  "ArrowDown",
		Confirm: "Space",
		Quit:    "Escape",
	}
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Window: WindowConfig{Title: "Pong", Scale: 1.0},
		Audio: AudioConfig{
			Enabled:     true,
			Bounce:      "bounce.wav",
			Volume:      0.8,
			MinInterval: 30 * time.Millisecond,
			Workers:     4,
		},
		Keys: DefaultKeys(),
		Log:  logger.DevelopmentConfig(),
	}
}

// Validate checks value ranges and binding uniqueness. Key names themselves
// are checked by the input package, which owns the key table.
func (c *Config) Validate() error {
	if c.Window.Scale <= 0 {
		return &FieldError{Field: "window.scale", Value: fmt.Sprint(c.Window.Scale), Reason: ErrOutOfRange}
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return &FieldError{Field: "audio.volume", Value: fmt.Sprint(c.Audio.Volume), Reason: ErrOutOfRange}
	}
	if c.Audio.MinInterval < 0 {
		return &FieldError{Field: "audio.min_interval", Value: c.Audio.MinInterval.String(), Reason: ErrOutOfRange}
	}
	if c.Audio.Workers < 1 {
		return &FieldError{Field: "audio.workers", Value: fmt.Sprint(c.Audio.Workers), Reason: ErrOutOfRange}
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return &FieldError{Field: "log.format", Value: c.Log.Format, Reason: ErrInvalidValue}
	}

	seen := make(map[string]string, 6)
	for _, b := range c.Keys.Fields() {
		if b.Key == "" {
			return &FieldError{Field: b.Field, Reason: ErrRequiredField}
		}
		if prev, ok := seen[b.Key]; ok {
			return &DuplicateBindingError{Key: b.Key, First: prev, Second: b.Field}
		}
		seen[b.Key] = b.Field
	}
	return nil
}
