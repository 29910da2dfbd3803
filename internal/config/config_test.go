package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "oscillator" {
		t.Errorf("expected model oscillator, got %s", cfg.Model)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Steps <= 0 {
		t.Error("steps should be positive")
	}
	if cfg.Shooting.MaxIter <= 0 {
		t.Error("max_iter should be positive")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Model = "balldrop"
	cfg.Dt = 0.005
	cfg.InitState.Vel = 49.05
	cfg.Shooting.BracketHigh = 60

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Model != "balldrop" {
		t.Errorf("model: got %s", loaded.Model)
	}
	if loaded.Dt != 0.005 {
		t.Errorf("dt: got %v", loaded.Dt)
	}
	if loaded.InitState.Vel != 49.05 {
		t.Errorf("vel: got %v", loaded.InitState.Vel)
	}
	if loaded.Shooting.BracketHigh != 60 {
		t.Errorf("bracket_high: got %v", loaded.Shooting.BracketHigh)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	// a partial file inherits defaults for everything it omits
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("model: balldrop\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Model != "balldrop" {
		t.Errorf("model: got %s", loaded.Model)
	}
	if loaded.Dt != DefaultDt {
		t.Errorf("dt should default, got %v", loaded.Dt)
	}
	if loaded.Shooting.MaxIter != DefaultMaxIter {
		t.Errorf("max_iter should default, got %v", loaded.Shooting.MaxIter)
	}
}

func TestGetInitState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitState.Pos = 2
	cfg.InitState.Vel = -1

	state := cfg.GetInitState()
	if len(state) != 2 || state[0] != 2 || state[1] != -1 {
		t.Errorf("got %v, want [2 -1]", state)
	}
}
