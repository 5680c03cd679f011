package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/example/triekv/log"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadValidMemoryConfig(t *testing.T) {
	path := writeConfig(t, "store:\n  backend: memory\nlog_level: debug\n")
	cfg, err := NewLoader(log.Nop()).Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store.Backend != "memory" {
		t.Fatalf("backend = %q, want memory", cfg.Store.Backend)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadDefaultsLogLevel(t *testing.T) {
	path := writeConfig(t, "store:\n  backend: memory\n")
	cfg, err := NewLoader(log.Nop()).Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level = %q, want default info", cfg.LogLevel)
	}
}

func TestLoadBadgerRequiresPath(t *testing.T) {
	path := writeConfig(t, "store:\n  backend: badger\n")
	if _, err := NewLoader(log.Nop()).Load(path); err == nil {
		t.Fatalf("expected error for badger backend with no path")
	}
}

func TestLoadBadgerWithPath(t *testing.T) {
	path := writeConfig(t, "store:\n  backend: badger\n  path: /var/lib/triekv\n")
	cfg, err := NewLoader(log.Nop()).Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store.Path != "/var/lib/triekv" {
		t.Fatalf("path = %q, want /var/lib/triekv", cfg.Store.Path)
	}
}

func TestLoadUnsupportedBackend(t *testing.T) {
	path := writeConfig(t, "store:\n  backend: rocksdb\n")
	if _, err := NewLoader(log.Nop()).Load(path); err == nil {
		t.Fatalf("expected error for unsupported backend")
	}
}

func TestLoadUnsupportedLogLevel(t *testing.T) {
	path := writeConfig(t, "store:\n  backend: memory\nlog_level: trace\n")
	if _, err := NewLoader(log.Nop()).Load(path); err == nil {
		t.Fatalf("expected error for unsupported log level")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := NewLoader(log.Nop()).Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
