package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Supported result document schema versions. The version tag tells a
// consumer which shape to expect.
const (
	SchemaV1 = "1.0" // flat single-implementation shape
	SchemaV2 = "2.0" // nested per-implementation (API + optional UI) shape
)

// Submission records how and when a result document was submitted.
type Submission struct {
	SubmittedAt string `json:"submitted_at"`
	SubmittedBy string `json:"submitted_by"`
	Method      string `json:"method"`
}

// Artifacts holds path references packaged with a result document.
type Artifacts struct {
	ReportPath string `json:"report_path,omitempty"`
	ResultPath string `json:"result_path,omitempty"`
	Workspace  string `json:"workspace,omitempty"`
}

// DocumentV1 is the flat single-implementation result shape.
type DocumentV1 struct {
	SchemaVersion string `json:"schema_version"`

	ToolName    string `json:"tool_name"`
	ToolVersion string `json:"tool_version,omitempty"`
	RunID       string `json:"run_id"`
	RunNumber   int    `json:"run_number"`
	Model       string `json:"model"`
	APIStyle    string `json:"api_style"`
	SpecRef     string `json:"spec_ref"`
	Environment string `json:"environment"`

	Timeline        Timeline          `json:"timeline"`
	Iterations      []IterationRecord `json:"iterations"`
	Usage           UsageRecord       `json:"usage"`
	Results         ResultSummary     `json:"results"`
	DurationMinutes Numeric           `json:"duration_minutes"`

	Artifacts  Artifacts  `json:"artifacts"`
	Submission Submission `json:"submission"`
}

// ToolInfo identifies the benchmarked coding tool in the v2 shape.
type ToolInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// RunInfo carries run identity in the v2 shape.
type RunInfo struct {
	ID          string `json:"id"`
	Number      int    `json:"number"`
	Model       string `json:"model"`
	APIStyle    string `json:"api_style"`
	SpecRef     string `json:"spec_ref"`
	Environment string `json:"environment"`
}

// APIImplementation is the backend section of the v2 shape.
type APIImplementation struct {
	Timeline        Timeline          `json:"timeline"`
	Iterations      []IterationRecord `json:"iterations"`
	Usage           UsageRecord       `json:"usage"`
	Results         ResultSummary     `json:"results"`
	DurationMinutes Numeric           `json:"duration_minutes"`
}

// UIImplementation is the optional UI section of the v2 shape. It is
// omitted entirely when no UI generation phase was observed.
type UIImplementation struct {
	Timeline        Timeline    `json:"timeline"`
	Usage           UsageRecord `json:"usage"`
	DurationMinutes Numeric     `json:"duration_minutes"`
}

// Implementations groups the per-implementation sections of the v2 shape.
type Implementations struct {
	API APIImplementation `json:"api"`
	UI  *UIImplementation `json:"ui,omitempty"`
}

// DocumentV2 is the nested per-implementation result shape.
type DocumentV2 struct {
	SchemaVersion string `json:"schema_version"`

	Tool ToolInfo `json:"tool"`
	Run  RunInfo  `json:"run"`

	Implementations Implementations `json:"implementations"`

	Artifacts  Artifacts  `json:"artifacts"`
	Submission Submission `json:"submission"`
}

// ResultDocument is the versioned output artifact. Exactly one of the
// shape fields is populated, selected by Version.
type ResultDocument struct {
	Version string
	V1      *DocumentV1
	V2      *DocumentV2
}

// MarshalJSON serializes whichever shape is populated.
func (d ResultDocument) MarshalJSON() ([]byte, error) {
	switch {
	case d.V1 != nil:
		return json.Marshal(d.V1)
	case d.V2 != nil:
		return json.Marshal(d.V2)
	default:
		return nil, fmt.Errorf("result document has no shape (version %q)", d.Version)
	}
}

// Encode serializes the document as two-space-indented UTF-8 JSON with
// a trailing newline. The output is deterministic for a given document.
func (d ResultDocument) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("encode result document: %w", err)
	}
	return buf.Bytes(), nil
}
