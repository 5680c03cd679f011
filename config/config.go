// Package config loads the YAML configuration used to stand up a
// store.Store backend: which backend to use and, for the durable
// backend, where it lives on disk.
package config

// Config is the parsed, validated application configuration.
type Config struct {
	// Store selects and configures the store.Store backend.
	Store StoreConfig

	// LogLevel is the minimum slog level to emit, one of
	// "debug", "info", "warn", "error".
	LogLevel string
}

// StoreConfig configures the key-value store backing a trie.
type StoreConfig struct {
	// Backend is either "memory" or "badger".
	Backend string

	// Path is the directory the badger backend persists to. Unused
	// for the memory backend.
	Path string
}

// rawConfig mirrors the on-disk YAML structure.
type rawConfig struct {
	Store struct {
		Backend string `yaml:"backend"`
		Path    string `yaml:"path"`
	} `yaml:"store"`
	LogLevel string `yaml:"log_level"`
}
