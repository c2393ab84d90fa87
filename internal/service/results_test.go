package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestResultService_Generate(t *testing.T) {
	dir := t.TempDir()
	reportPath := filepath.Join(dir, "PROGRESS_REPORT.md")
	if err := os.WriteFile(reportPath, []byte(sampleReport), 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(dir, "results")

	svc := NewResultService(nil, nil)
	out, written, err := svc.Generate(context.Background(), reportPath, outDir, testIdentity(), testOptions())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if filepath.Base(written) != out.Filename {
		t.Errorf("written path %q does not end in the canonical filename %q", written, out.Filename)
	}
	data, err := os.ReadFile(written)
	if err != nil {
		t.Fatalf("result document not written: %v", err)
	}
	if string(data) != string(out.Data) {
		t.Error("written bytes differ from pipeline output")
	}
}

func TestResultService_Generate_MissingReport(t *testing.T) {
	dir := t.TempDir()

	svc := NewResultService(nil, nil)
	out, written, err := svc.Generate(context.Background(),
		filepath.Join(dir, "does-not-exist.md"), filepath.Join(dir, "results"),
		testIdentity(), testOptions())
	if err != nil {
		t.Fatalf("a missing report must not fail: %v", err)
	}

	if out.Metrics.Timeline.AnySet() {
		t.Error("metrics not all-unset for a missing report")
	}
	if _, err := os.Stat(written); err != nil {
		t.Errorf("document not written for a missing report: %v", err)
	}
}
