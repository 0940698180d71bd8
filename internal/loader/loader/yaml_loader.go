package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"pong/internal/loader/schema"
)

const sourceDefaults = "defaults"

type YamlLoader struct {
	File   string
	Config schema.Config
	source string
}

func NewYamlLoader(fileName string) *YamlLoader {
	return &YamlLoader{
		File:   fileName,
		Config: schema.Default(),
	}
}

// Load reads the file over the defaults, applies PONG_* overrides and
// validates the result. A missing file is not an error.
func (l *YamlLoader) Load() error {
	cfg := schema.Default()
	l.source = sourceDefaults

	file, err := os.Open(l.File)
	switch {
	case err == nil:
		defer func() { _ = file.Close() }()
		if err := decode(bufio.NewReader(file), &cfg); err != nil {
			return fmt.Errorf("invalid config %s: %w", l.File, err)
		}
		l.source = l.File
	case errors.Is(err, fs.ErrNotExist):
	default:
		return fmt.Errorf("open config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	l.Config = cfg
	return nil
}

func (l *YamlLoader) GetConfig() schema.Config {
	return l.Config
}

func (l *YamlLoader) Source() string {
	if l.source == "" {
		return sourceDefaults
	}
	return l.source
}

// decode fills cfg from r. Fields absent from the document keep their
// current values; unknown fields are rejected.
func decode(r io.Reader, cfg *schema.Config) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			for _, msg := range typeErr.Errors {
				if strings.HasPrefix(msg, "line") {
					return errors.New(msg)
				}
			}
		}
		return err
	}
	return nil
}
