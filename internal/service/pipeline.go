// Package service orchestrates the report extraction pipeline and its
// filesystem boundary.
package service

import (
	"log/slog"
	"time"

	"benchreport/internal/models"
	"benchreport/internal/report"
	"benchreport/internal/result"
)

// Options configure one pipeline invocation.
type Options struct {
	// SchemaVersion selects the output document shape.
	SchemaVersion string
	// SubmittedBy and Method fill the submission metadata.
	SubmittedBy string
	Method      string
	// ReportPath is recorded as an artifact reference (may be empty).
	ReportPath string
	// At is the instant used for the filename stamp and the
	// submitted_at field. Callers pass their clock; the pipeline has
	// none of its own.
	At time.Time
}

// Output bundles everything one pipeline invocation produces.
type Output struct {
	Metrics    models.CanonicalMetrics
	Document   models.ResultDocument
	Data       []byte
	Filename   string
	Violations []result.Violation
}

// Valid reports whether the validator found no violations.
func (o Output) Valid() bool {
	return len(o.Violations) == 0
}

// Run executes the whole pipeline on one report text: assemble
// canonical metrics, build the versioned document, derive the canonical
// filename and validate the serialized result.
//
// The only error path is a caller mistake (an unsupported schema
// version or an unserializable document); missing or malformed report
// data never fails, it degrades to unset fields and validator-reported
// violations. The function is pure given its inputs: the same text,
// identity and options yield byte-identical output.
func Run(reportText string, id models.RunIdentity, opts Options, log *slog.Logger) (Output, error) {
	if log == nil {
		log = slog.Default()
	}

	metrics := report.Assemble(reportText, log)

	filename := result.Filename(id, opts.At)
	artifacts := models.Artifacts{
		ReportPath: opts.ReportPath,
		ResultPath: filename,
		Workspace:  id.Workspace,
	}
	submission := models.Submission{
		SubmittedAt: string(models.NewTimestamp(opts.At)),
		SubmittedBy: opts.SubmittedBy,
		Method:      opts.Method,
	}

	doc, err := result.Build(id, metrics, opts.SchemaVersion, artifacts, submission)
	if err != nil {
		return Output{}, err
	}
	data, err := doc.Encode()
	if err != nil {
		return Output{}, err
	}

	return Output{
		Metrics:    metrics,
		Document:   doc,
		Data:       data,
		Filename:   filename,
		Violations: result.Validate(data, filename),
	}, nil
}
