package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Name != "justact" {
		t.Errorf("expected Name=justact, got %s", cfg.Name)
	}
	if cfg.Policy.FactLimit != 1000000 {
		t.Errorf("expected Policy.FactLimit=1000000, got %d", cfg.Policy.FactLimit)
	}
	if cfg.TraceStore.Enabled {
		t.Errorf("expected trace store disabled by default")
	}
}

func TestConfigSaveLoad(t *testing.T) {
	t.Setenv("JUSTACT_TRACE_DB", "")
	t.Setenv("JUSTACT_DEBUG", "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	cfg := DefaultConfig()
	cfg.Logging.DebugMode = true
	cfg.TraceStore.Enabled = true
	cfg.TraceStore.Path = "custom-trace.db"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !loaded.Logging.DebugMode {
		t.Errorf("expected DebugMode to round-trip true")
	}
	if loaded.TraceStore.Path != "custom-trace.db" {
		t.Errorf("expected trace store path to round-trip, got %s", loaded.TraceStore.Path)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("JUSTACT_TRACE_DB", "")
	t.Setenv("JUSTACT_DEBUG", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "justact" {
		t.Errorf("expected defaults when config file is missing")
	}
}

func TestValidateRejectsBadDurations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy.QueryTimeout = "not-a-duration"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected Validate to reject a malformed duration")
	}
}

func TestValidateRejectsNonPositiveFactLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy.FactLimit = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected Validate to reject a non-positive fact limit")
	}
}
