package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.TOC.Depth != 2 {
		t.Errorf("TOC.Depth = %d, want 2", cfg.TOC.Depth)
	}
	if cfg.Format.Width != 80 {
		t.Errorf("Format.Width = %d, want 80", cfg.Format.Width)
	}
	if cfg.TOC.StrictTitleMatch {
		t.Error("StrictTitleMatch should default to false")
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.TOC.Depth != 2 || cfg.Format.Width != 80 {
			t.Errorf("cfg = %+v, want defaults", cfg)
		}
	})

	t.Run("full file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".mdstruct.yaml")
		data := "toc:\n  depth: 3\n  strict_title_match: true\nformat:\n  width: 100\n"
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.TOC.Depth != 3 || cfg.Format.Width != 100 || !cfg.TOC.StrictTitleMatch {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("partial file fills defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".mdstruct.yaml")
		if err := os.WriteFile(path, []byte("format:\n  width: 120\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Format.Width != 120 {
			t.Errorf("Format.Width = %d, want 120", cfg.Format.Width)
		}
		if cfg.TOC.Depth != 2 {
			t.Errorf("TOC.Depth = %d, want the default 2", cfg.TOC.Depth)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".mdstruct.yaml")
		if err := os.WriteFile(path, []byte("toc: [unclosed"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected a parse error")
		}
	})
}
