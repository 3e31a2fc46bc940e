package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromPath_DefaultConfig(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := LoadFromPath(tmpDir)
	if err != nil {
		t.Fatalf("LoadFromPath() failed: %v", err)
	}

	if cfg.Format != "yaml" {
		t.Errorf("Format = %q, want yaml", cfg.Format)
	}
	if cfg.RequireName {
		t.Errorf("RequireName = true, want false by default")
	}

	absPath, _ := filepath.Abs(tmpDir)
	if cfg.ProjectRoot != absPath {
		t.Errorf("ProjectRoot = %q, want %q", cfg.ProjectRoot, absPath)
	}
}

func TestLoadFromPath_FindsConfig(t *testing.T) {
	tmpDir := t.TempDir()
	content := "format: json\nrequire_name: true\nsourcemap: true\n"
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadFromPath(tmpDir)
	if err != nil {
		t.Fatalf("LoadFromPath() failed: %v", err)
	}

	if cfg.Format != "json" || !cfg.RequireName || !cfg.Sourcemap {
		t.Errorf("cfg = %+v, want format=json require_name=true sourcemap=true", cfg)
	}
}

func TestLoadFromPath_WalksUpDirectoryTree(t *testing.T) {
	tmpDir := t.TempDir()
	content := "format: json\n"
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	nested := filepath.Join(tmpDir, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}

	cfg, err := LoadFromPath(nested)
	if err != nil {
		t.Fatalf("LoadFromPath() failed: %v", err)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
}

func TestLoadFromPath_InvalidFormat(t *testing.T) {
	tmpDir := t.TempDir()
	content := "format: xml\n"
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := LoadFromPath(tmpDir); err == nil {
		t.Fatal("LoadFromPath() with format=xml: want error, got nil")
	}
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	content := "format: [unterminated\n"
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := LoadFromPath(tmpDir); err == nil {
		t.Fatal("LoadFromPath() with malformed YAML: want error, got nil")
	}
}
