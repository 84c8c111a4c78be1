package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ember/internal/parser"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ember.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.Color {
		t.Error("Color should default to true")
	}
	if cfg.Format != FormatText {
		t.Errorf("Format = %v, want %v", cfg.Format, FormatText)
	}
	if cfg.Timing {
		t.Error("Timing should default to false")
	}
	if cfg.MaxDepth != parser.DefaultMaxDepth {
		t.Errorf("MaxDepth = %v, want %v", cfg.MaxDepth, parser.DefaultMaxDepth)
	}
	if cfg.Log.Verbosity != 1 {
		t.Errorf("Log.Verbosity = %v, want 1", cfg.Log.Verbosity)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
color = false
format = "yaml"
max_depth = 64

[log]
verbosity = 2
file = "/tmp/ember.log"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Color {
		t.Error("Color = true, want false")
	}
	if cfg.Format != FormatYAML {
		t.Errorf("Format = %v, want %v", cfg.Format, FormatYAML)
	}
	if cfg.MaxDepth != 64 {
		t.Errorf("MaxDepth = %v, want 64", cfg.MaxDepth)
	}
	if cfg.Log.Verbosity != 2 || cfg.Log.File != "/tmp/ember.log" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	// Not set in the file
	if cfg.Timing {
		t.Error("Timing should keep its default")
	}
}

func TestLoadExpandsEnv(t *testing.T) {
	path := writeConfig(t, `timing = true`)
	t.Setenv("EMBER_TEST_CONFIG", path)

	cfg, err := Load("$EMBER_TEST_CONFIG")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Timing {
		t.Error("Timing = false, want true")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("expected error for an explicit missing file")
	}

	// The default path is optional.
	dir := t.TempDir()
	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Format != FormatText {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"unknown key", "colour = true", "unknown config keys"},
		{"bad format", `format = "xml"`, "unsupported format"},
		{"negative depth", "max_depth = -1", "must not be negative"},
		{"syntax", "format = ", "failed to load config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	cfg, err := Decode(`format = "json"`)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if cfg.Format != FormatJSON {
		t.Errorf("Format = %v, want %v", cfg.Format, FormatJSON)
	}

	if _, err := Decode(`max_depth = "deep"`); err == nil {
		t.Error("expected type error")
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"unknown key", "colour = true", "unknown config keys: colour"},
		{"unknown table key", "[log]\nlevel = 3", "unknown config keys: log.level"},
		{"bad format", `format = "xml"`, "unsupported format"},
		{"negative depth", "max_depth = -1", "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.content)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}
