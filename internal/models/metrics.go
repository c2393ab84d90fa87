package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Unset is the explicit sentinel for "no valid value could be derived".
// It is distinct from zero and from the empty string, and it is what
// consumers of a result document see for any field that could not be
// extracted from the report.
const Unset = "unset"

// TimestampLayout is the canonical wire format for extracted instants:
// RFC3339 UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp is an extracted instant-in-time, either a normalized
// RFC3339 UTC string or the Unset sentinel.
type Timestamp string

// UnsetTime is the Timestamp sentinel value.
const UnsetTime Timestamp = Unset

// IsSet reports whether the timestamp holds a real value.
func (t Timestamp) IsSet() bool {
	return t != "" && t != UnsetTime
}

// Time parses the timestamp. The second return value is false for the
// Unset sentinel or a malformed value.
func (t Timestamp) Time() (time.Time, bool) {
	if !t.IsSet() {
		return time.Time{}, false
	}
	parsed, err := time.Parse(time.RFC3339, string(t))
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// NewTimestamp normalizes a time to the canonical millisecond UTC form.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.UTC().Format(TimestampLayout))
}

// Numeric is a metric value that is either a number or the Unset
// sentinel. The zero value is unset.
type Numeric struct {
	Value float64
	Valid bool
}

// Num wraps a plain number in a set Numeric.
func Num(v float64) Numeric {
	return Numeric{Value: v, Valid: true}
}

// String renders the number without exponent notation, or the Unset
// sentinel.
func (n Numeric) String() string {
	if !n.Valid {
		return Unset
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// MarshalJSON emits the number without exponent notation, or the Unset
// sentinel string.
func (n Numeric) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte(`"` + Unset + `"`), nil
	}
	return []byte(strconv.FormatFloat(n.Value, 'f', -1, 64)), nil
}

// UnmarshalJSON accepts a JSON number or the Unset sentinel string.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == Unset {
			*n = Numeric{}
			return nil
		}
		return fmt.Errorf("numeric field: unexpected string %q", s)
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Num(v)
	return nil
}

// Milestone is a single named instant extracted from a report.
type Milestone struct {
	Label string    `json:"label"`
	At    Timestamp `json:"at"`
}

// Timeline is the ordered collection of a run's milestones. Order is
// the metrics contract order, not discovery order in the text.
type Timeline []Milestone

// Get returns the timestamp for label, or the Unset sentinel.
func (t Timeline) Get(label string) Timestamp {
	for _, m := range t {
		if m.Label == label {
			return m.At
		}
	}
	return UnsetTime
}

// AnySet reports whether at least one milestone resolved to a value.
func (t Timeline) AnySet() bool {
	for _, m := range t {
		if m.At.IsSet() {
			return true
		}
	}
	return false
}

// IterationRecord holds the metrics for one test-execution attempt.
// Ordinals are 1-based and unique within a run.
type IterationRecord struct {
	Ordinal         int       `json:"ordinal"`
	Start           Timestamp `json:"start"`
	End             Timestamp `json:"end"`
	DurationMinutes Numeric   `json:"duration_minutes"`
	Total           Numeric   `json:"total"`
	Passed          Numeric   `json:"passed"`
	Failed          Numeric   `json:"failed"`
	PassRate        Numeric   `json:"pass_rate"` // ratio in [0.0, 1.0]
}

// Usage provenance values.
const (
	UsageSourceTool     = "tool"
	UsageSourceEstimate = "estimate"
	UsageSourceUnknown  = "unknown"
)

// UsageRecord holds token/request/cost counters for one generation
// phase. All counters are optional; Source records whether values came
// from the tool itself, an operator estimate, or are unknown.
type UsageRecord struct {
	ModelName     string  `json:"model_name"`
	APIRequests   Numeric `json:"api_requests"`
	TotalTokens   Numeric `json:"total_tokens"`
	InputTokens   Numeric `json:"input_tokens"`
	OutputTokens  Numeric `json:"output_tokens"`
	EstimatedCost Numeric `json:"estimated_cost"`
	CostCurrency  string  `json:"cost_currency"`
	Source        string  `json:"source"`
}

// Empty reports whether nothing at all was observed for this phase.
func (u UsageRecord) Empty() bool {
	return (u.ModelName == "" || u.ModelName == Unset) &&
		!u.APIRequests.Valid && !u.TotalTokens.Valid &&
		!u.InputTokens.Valid && !u.OutputTokens.Valid &&
		!u.EstimatedCost.Valid &&
		(u.CostCurrency == "" || u.CostCurrency == Unset) &&
		(u.Source == "" || u.Source == UsageSourceUnknown)
}

// ResultSummary is the pass/fail state of the final accepted test run.
type ResultSummary struct {
	TotalTests  Numeric `json:"total_tests"`
	TestsPassed Numeric `json:"tests_passed"`
	TestsFailed Numeric `json:"tests_failed"`
	PassRate    Numeric `json:"pass_rate"`
}

// CanonicalMetrics is the fully assembled, pipeline-internal metrics
// object for one run. Built once per invocation, immutable thereafter.
type CanonicalMetrics struct {
	Timeline   Timeline          `json:"timeline"`
	UITimeline Timeline          `json:"ui_timeline"`
	Iterations []IterationRecord `json:"iterations"`
	Usage      UsageRecord       `json:"usage"`
	UIUsage    UsageRecord       `json:"ui_usage"`
	Results    ResultSummary     `json:"results"`

	// Elapsed summaries derived from the timelines.
	TotalMinutes Numeric `json:"total_minutes"`
	UIMinutes    Numeric `json:"ui_minutes"`
}

// HasUI reports whether a UI generation phase was observed at all.
func (m CanonicalMetrics) HasUI() bool {
	return m.UITimeline.AnySet() || !m.UIUsage.Empty()
}
