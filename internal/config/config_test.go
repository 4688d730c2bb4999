package config

import (
	"testing"
)

func TestLoadConfigMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.ScriptVersion != "microscopy-v2" {
		t.Errorf("ScriptVersion = %q", cfg.ScriptVersion)
	}
	if cfg.DebounceMs != 400 {
		t.Errorf("DebounceMs = %d, want 400", cfg.DebounceMs)
	}
	if cfg.ResultsFolder != "results" {
		t.Errorf("ResultsFolder = %q, want results", cfg.ResultsFolder)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.DebounceMs = 150
	cfg.ResultsFolder = "out"
	if err := SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.DebounceMs != 150 {
		t.Errorf("DebounceMs = %d, want 150", loaded.DebounceMs)
	}
	if loaded.ResultsFolder != "out" {
		t.Errorf("ResultsFolder = %q, want out", loaded.ResultsFolder)
	}
}
