package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Load of missing file succeeded")
	}
}

func TestLoadBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of malformed JSON succeeded")
	}
}

func TestResolvePrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"width": 32, "height": 24, "target_fps": 30, "format": "tga"}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Flags beat the file; the file beats defaults.
	cfg.Resolve(Flags{Width: 64, Device: "text"})

	if cfg.Width != 64 {
		t.Errorf("Width = %d, want flag value 64", cfg.Width)
	}
	if cfg.Height != 24 {
		t.Errorf("Height = %d, want file value 24", cfg.Height)
	}
	if cfg.TargetFPS != 30 {
		t.Errorf("TargetFPS = %d, want file value 30", cfg.TargetFPS)
	}
	if cfg.Format != "tga" {
		t.Errorf("Format = %q, want file value tga", cfg.Format)
	}
	if cfg.Device != "text" {
		t.Errorf("Device = %q, want flag value text", cfg.Device)
	}
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.Width != 20 || cfg.Height != 20 {
		t.Errorf("dims = %d×%d, want 20×20", cfg.Width, cfg.Height)
	}
	if cfg.TargetFPS != 60 {
		t.Errorf("TargetFPS = %d, want 60", cfg.TargetFPS)
	}
	if cfg.Device != "window" {
		t.Errorf("Device = %q, want window", cfg.Device)
	}
	if cfg.Format != "webp" {
		t.Errorf("Format = %q, want webp", cfg.Format)
	}
	if cfg.Frames != 120 {
		t.Errorf("Frames = %d, want 120", cfg.Frames)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want ≥ 1", cfg.Workers)
	}
}
