package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"benchreport/internal/models"
	"benchreport/internal/store"
)

// ResultService is the filesystem boundary around the pure pipeline: it
// reads the report, writes the result document and records the run in
// the index.
type ResultService struct {
	index *store.Store // optional; nil disables indexing
	log   *slog.Logger
}

// NewResultService creates a result service. index may be nil.
func NewResultService(index *store.Store, log *slog.Logger) *ResultService {
	if log == nil {
		log = slog.Default()
	}
	return &ResultService{index: index, log: log}
}

// Generate runs the pipeline for one report file and writes the result
// document into outDir under its canonical filename.
//
// A missing report file is a degenerate but valid input: the document
// is still produced, with all metrics unset. Any other read failure is
// the caller's to handle and is returned as an error.
func (s *ResultService) Generate(ctx context.Context, reportPath, outDir string, id models.RunIdentity, opts Options) (Output, string, error) {
	text, err := readReport(reportPath)
	if err != nil {
		return Output{}, "", err
	}
	if text == "" {
		s.log.Warn("report absent or empty, producing all-unset metrics", "path", reportPath)
		opts.ReportPath = ""
	} else {
		opts.ReportPath = reportPath
	}

	out, err := Run(text, id, opts, s.log)
	if err != nil {
		return Output{}, "", err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Output{}, "", fmt.Errorf("create output directory: %w", err)
	}
	written := filepath.Join(outDir, out.Filename)
	if err := os.WriteFile(written, out.Data, 0o644); err != nil {
		return Output{}, "", fmt.Errorf("write result document: %w", err)
	}

	if s.index != nil {
		entry := store.Entry{
			Filename:      out.Filename,
			RunID:         id.RunID,
			Tool:          id.ToolName,
			Model:         id.Model,
			APIStyle:      id.APIStyle,
			RunNumber:     id.RunNumber,
			SchemaVersion: opts.SchemaVersion,
			Valid:         out.Valid(),
			Violations:    len(out.Violations),
		}
		if err := s.index.Record(ctx, entry); err != nil {
			// Indexing is bookkeeping; a failure must not discard the document.
			s.log.Error("failed to index run", "filename", out.Filename, "error", err)
		}
	}

	s.log.Info("result document generated",
		"filename", out.Filename,
		"schema_version", opts.SchemaVersion,
		"valid", out.Valid(),
		"violations", len(out.Violations))
	return out, written, nil
}

// readReport loads the report text. A missing file yields empty text,
// not an error.
func readReport(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read report: %w", err)
	}
	return string(data), nil
}
