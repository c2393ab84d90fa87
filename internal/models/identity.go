// Package models defines the value objects shared across the benchreport pipeline.
package models

// Closed vocabulary for run identity fields. The validator rejects
// anything outside these sets.
const (
	ModelA = "A"
	ModelB = "B"

	APIStyleREST    = "REST"
	APIStyleGraphQL = "GraphQL"
)

// RunIdentity carries the caller-supplied identity of one benchmark run.
// It is produced by the surrounding orchestration and passed in verbatim;
// all fields except ToolVersion must be non-empty.
type RunIdentity struct {
	ToolName    string `json:"tool_name"`
	ToolVersion string `json:"tool_version,omitempty"`
	RunID       string `json:"run_id"`
	RunNumber   int    `json:"run_number"` // 1 or 2
	Model       string `json:"model"`      // ModelA or ModelB
	APIStyle    string `json:"api_style"`  // APIStyleREST or APIStyleGraphQL
	SpecRef     string `json:"spec_ref"`
	Workspace   string `json:"workspace"`
	Environment string `json:"environment"`
}
