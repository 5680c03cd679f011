package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/example/triekv/log"
)

// Loader reads the main config file.
type Loader struct {
	log       log.Logger
	validator *validator
	parser    *parser
}

// NewLoader creates a new config Loader with
// the specified logging context attached.
func NewLoader(l log.Logger) *Loader {
	l = l.With("component", "config-loader")
	return &Loader{
		log:       l,
		validator: newValidator(l),
		parser:    newParser(l),
	}
}

// Load reads, validates, and parses the config file at the given path.
func (l *Loader) Load(path string) (*Config, error) {
	l.log.Info("load config", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := l.validator.validate(&raw); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg, err := l.parser.parse(&raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
