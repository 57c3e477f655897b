package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Problem != "linear" {
		t.Errorf("expected problem linear, got %s", cfg.Problem)
	}
	if cfg.H == 0 {
		t.Error("h should be nonzero")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.H = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for h=0")
	}

	cfg = DefaultConfig()
	cfg.Kind = "vector"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown kind")
	}

	cfg = DefaultConfig()
	cfg.H = -0.1 // wrong direction for t0 < t_end
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for step pointing away from t_end")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("forced", "default")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Init.U != 1.0 || cfg.Init.V != -1.0 {
		t.Errorf("expected u=1 v=-1, got u=%f v=%f", cfg.Init.U, cfg.Init.V)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("linear", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "default"); cfg != nil {
		t.Error("expected nil for nonexistent problem")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("linear"); len(presets) == 0 {
		t.Error("expected presets for linear")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent problem")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Problem = "forced"
	cfg.Kind = "coupled"
	cfg.T0 = 0
	cfg.H = 0.05
	cfg.Init.U = 2.0

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Problem != "forced" || loaded.Kind != "coupled" {
		t.Errorf("round trip lost problem/kind: %+v", loaded)
	}
	if loaded.H != 0.05 || loaded.Init.U != 2.0 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
