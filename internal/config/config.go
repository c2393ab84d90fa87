// Package config loads harness configuration. The config is read once
// by the CLI and passed explicitly into the pipeline; no pipeline
// component reads ambient process state.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"benchreport/internal/models"
)

// Config holds all harness-level settings.
type Config struct {
	// OutputDir is where result documents are written.
	OutputDir string `yaml:"output_dir"`
	// ReportName is the report file looked for inside a workspace when
	// no explicit report path is given.
	ReportName string `yaml:"report_name"`
	// SchemaVersion is the default output schema ("1.0" or "2.0").
	SchemaVersion string `yaml:"schema_version"`
	// IndexPath is the SQLite run index location. Empty disables indexing.
	IndexPath string `yaml:"index_path"`

	// Submission metadata defaults.
	SubmittedBy string `yaml:"submitted_by"`
	Method      string `yaml:"method"`

	// Logging
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		OutputDir:     "results",
		ReportName:    "PROGRESS_REPORT.md",
		SchemaVersion: models.SchemaV2,
		IndexPath:     "results/index.db",
		Method:        "cli",
		LogFile:       "benchreport.log",
		LogLevel:      "INFO",
	}
}

// Load reads configuration from a YAML file. An explicit path must
// exist; with an empty path the default locations are searched in order
// and the defaults are returned when none is found.
func Load(path string) (Config, error) {
	cfg := Default()

	var data []byte
	var err error
	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
	} else {
		for _, candidate := range []string{"benchreport.yaml", ".benchreport.yaml"} {
			data, err = os.ReadFile(candidate)
			if err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// SlogLevel maps the configured level name onto a slog level.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
