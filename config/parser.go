package config

import (
	"github.com/example/triekv/log"
)

// parser handles the conversion of raw config data into a
// structured Config.
type parser struct {
	log log.Logger
}

// newParser creates a new parser with the specified logger.
func newParser(l log.Logger) *parser {
	return &parser{
		log: l.With("component", "config-parser"),
	}
}

// parse parses the raw config data into a Config. The caller must
// have validated raw first; parse does not re-check constraints.
func (p *parser) parse(raw *rawConfig) (*Config, error) {
	level := raw.LogLevel
	if level == "" {
		level = "info"
		p.log.Debug("log level not specified, fallback to default", "level", level)
	}

	return &Config{
		Store: StoreConfig{
			Backend: raw.Store.Backend,
			Path:    raw.Store.Path,
		},
		LogLevel: level,
	}, nil
}
