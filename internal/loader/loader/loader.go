package loader

import (
	"pong/internal/loader/schema"
)

type Loader interface {
	Load() error
	GetConfig() schema.Config
	// Source reports where the config came from: a file path or "defaults".
	Source() string
}

func NewLoader(loaderType string, filename string) Loader {
	switch loaderType {
	case "yaml":
		return NewYamlLoader(filename)
	default:
		return NewYamlLoader(filename)
	}
}
