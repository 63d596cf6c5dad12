package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width <= 0 || cfg.Graphics.Height <= 0 {
		t.Error("default window size must be positive")
	}
	if cfg.Camera.DragSensitivity <= 0 || cfg.Camera.ZoomSensitivity <= 0 {
		t.Error("default camera sensitivities must be positive")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Logging.Level)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 2560
	cfg.Graphics.Fullscreen = true
	cfg.Paths.SnapshotDir = "/tmp/shots"
	cfg.Camera.ZoomSensitivity = 0.25

	if err := cfg.SaveTo(path); err != nil {
		t.Fatal(err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatal(err)
	}

	if loaded.Graphics.Width != 2560 {
		t.Errorf("width = %d, want 2560", loaded.Graphics.Width)
	}
	if !loaded.Graphics.Fullscreen {
		t.Error("fullscreen lost in round trip")
	}
	if loaded.Paths.SnapshotDir != "/tmp/shots" {
		t.Errorf("snapshot dir = %q", loaded.Paths.SnapshotDir)
	}
	if loaded.Camera.ZoomSensitivity != 0.25 {
		t.Errorf("zoom sensitivity = %v", loaded.Camera.ZoomSensitivity)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	partial := []byte("graphics:\n  width: 800\n")
	if err := os.WriteFile(path, partial, 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatal(err)
	}

	if cfg.Graphics.Width != 800 {
		t.Errorf("width = %d, want 800", cfg.Graphics.Width)
	}
	if cfg.Camera.DragSensitivity != Default().Camera.DragSensitivity {
		t.Error("unset section lost its defaults")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("graphics: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err == nil {
		t.Error("malformed YAML accepted")
	}
}
