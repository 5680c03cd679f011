package config

import (
	"fmt"

	"github.com/example/triekv/log"
)

// validator validates the raw config.
type validator struct {
	log log.Logger
}

// newValidator creates a new validator
// with the specified logger.
func newValidator(l log.Logger) *validator {
	return &validator{
		log: l.With("component", "config-validator"),
	}
}

// validate validates the raw config.
func (v *validator) validate(raw *rawConfig) error {
	v.log.Debug("validate store config", "backend", raw.Store.Backend)

	switch raw.Store.Backend {
	case "memory":
		// no further requirements
	case "badger":
		if raw.Store.Path == "" {
			return fmt.Errorf("store.path is required for the badger backend")
		}
	case "":
		return fmt.Errorf("store.backend is required")
	default:
		return fmt.Errorf("unsupported store backend %q", raw.Store.Backend)
	}

	switch raw.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level %q", raw.LogLevel)
	}

	return nil
}
