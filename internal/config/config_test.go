package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Addr() != "127.0.0.1:8000" {
		t.Errorf("Default addr = %q, want 127.0.0.1:8000", cfg.Server.Addr())
	}
	if !cfg.Training.PostAUF {
		t.Error("Default training config should apply an AUF")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  host: 0.0.0.0\n  port: 9999\ntraining:\n  pre_rotate: false\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Addr() != "0.0.0.0:9999" {
		t.Errorf("Addr = %q, want 0.0.0.0:9999", cfg.Server.Addr())
	}
	if cfg.Training.PreRotate {
		t.Error("pre_rotate: false should override the default")
	}
	// Unset fields keep defaults
	if !cfg.Training.PostAUF {
		t.Error("post_auf should keep its default")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with a missing explicit path should fail")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: ["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load with malformed YAML should fail")
	}
}
