package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Event.Active {
		t.Error("Event.Active should be false by default")
	}
	if cfg.Event.Multiplier != 2.0 {
		t.Errorf("Event.Multiplier = %v, want 2.0", cfg.Event.Multiplier)
	}
	if cfg.Rollover.PageSize != 100 {
		t.Errorf("Rollover.PageSize = %d, want 100", cfg.Rollover.PageSize)
	}
	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("API.Host = %q, want %q", cfg.API.Host, "127.0.0.1")
	}
	if cfg.API.Port != 8642 {
		t.Errorf("API.Port = %d, want %d", cfg.API.Port, 8642)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("missing file config = %+v, want defaults", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[db]
path = "/tmp/fit.db"

[event]
active = true
multiplier = 3.0

[api]
port = 9000
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DB.Path != "/tmp/fit.db" {
		t.Errorf("DB.Path = %q, want /tmp/fit.db", cfg.DB.Path)
	}
	if !cfg.Event.Active {
		t.Error("Event.Active should be true")
	}
	if cfg.Event.Multiplier != 3.0 {
		t.Errorf("Event.Multiplier = %v, want 3.0", cfg.Event.Multiplier)
	}
	if cfg.API.Port != 9000 {
		t.Errorf("API.Port = %d, want 9000", cfg.API.Port)
	}
	// Untouched sections keep defaults.
	if cfg.Rollover.PageSize != 100 {
		t.Errorf("Rollover.PageSize = %d, want 100", cfg.Rollover.PageSize)
	}
	if cfg.API.Addr() != "127.0.0.1:9000" {
		t.Errorf("Addr() = %q, want 127.0.0.1:9000", cfg.API.Addr())
	}
}
