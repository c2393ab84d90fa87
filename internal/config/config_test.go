package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"benchreport/internal/models"
)

func TestLoadDefaults(t *testing.T) {
	// Run from an empty directory so no local config file is picked up.
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.SchemaVersion != models.SchemaV2 {
		t.Errorf("default schema version = %q", cfg.SchemaVersion)
	}
	if cfg.OutputDir != "results" || cfg.ReportName != "PROGRESS_REPORT.md" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchreport.yaml")
	content := []byte("output_dir: /data/results\nschema_version: \"1.0\"\nlog_level: debug\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.OutputDir != "/data/results" {
		t.Errorf("output_dir = %q", cfg.OutputDir)
	}
	if cfg.SchemaVersion != models.SchemaV1 {
		t.Errorf("schema_version = %q", cfg.SchemaVersion)
	}
	// Unset keys keep their defaults.
	if cfg.ReportName != "PROGRESS_REPORT.md" {
		t.Errorf("report_name = %q, want the default", cfg.ReportName)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v", cfg.SlogLevel())
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load() with a missing explicit path did not fail")
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"Warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := Config{LogLevel: tt.in}
		if got := cfg.SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetupLoggerWithWriters(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelInfo)

	logger.Info("document generated", "filename", "x.json")

	if !bytes.Contains(stderr.Bytes(), []byte("document generated")) {
		t.Error("message missing from text output")
	}
	var entry map[string]any
	if err := json.Unmarshal(file.Bytes(), &entry); err != nil {
		t.Fatalf("file output is not JSON: %v", err)
	}
	if entry["filename"] != "x.json" {
		t.Errorf("structured attribute missing: %v", entry)
	}
}
