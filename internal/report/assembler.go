package report

import (
	"log/slog"

	"benchreport/internal/models"
)

// The metrics contract: the fixed vocabulary of field labels recognized
// verbatim in report text. Renaming any of these breaks compatibility
// with reports already written by the harness prompts.
const (
	LabelGenerationStarted = "generation_started"
	LabelCodeComplete      = "code_complete"
	LabelBuildClean        = "build_clean"
	LabelSeedLoaded        = "seed_loaded"
	LabelAppStarted        = "app_started"
	LabelAllTestsPassed    = "all_tests_passed"

	LabelTotalTests  = "total_tests"
	LabelTestsPassed = "tests_passed"
	LabelTestsFailed = "tests_failed"
	LabelPassRate    = "pass_rate"

	LabelModelName     = "model_name"
	LabelAPIRequests   = "api_requests"
	LabelTotalTokens   = "total_tokens"
	LabelInputTokens   = "input_tokens"
	LabelOutputTokens  = "output_tokens"
	LabelEstimatedCost = "estimated_cost"
	LabelCostCurrency  = "cost_currency"
	LabelUsageSource   = "usage_source"

	// The UI generation phase mirrors the milestone and usage labels
	// with this prefix (ui_generation_started, ui_model_name, ...).
	UIPrefix = "ui_"
)

// milestoneLabels is the timeline contract in canonical order.
var milestoneLabels = []string{
	LabelGenerationStarted,
	LabelCodeComplete,
	LabelBuildClean,
	LabelSeedLoaded,
	LabelAppStarted,
	LabelAllTestsPassed,
}

// uiMilestoneLabels is the subset of milestones the UI phase reports.
var uiMilestoneLabels = []string{
	LabelGenerationStarted,
	LabelCodeComplete,
	LabelAllTestsPassed,
}

// Assemble builds the canonical metrics object for one run from raw
// report text. It never fails: absent text yields an all-unset object,
// and a malformed field degrades to unset without aborting assembly of
// the rest. Calling it twice on the same text yields identical output.
func Assemble(text string, log *slog.Logger) models.CanonicalMetrics {
	e := NewExtractor(text, log)

	timeline := e.timeline("", milestoneLabels)
	uiTimeline := e.timeline(UIPrefix, uiMilestoneLabels)

	m := models.CanonicalMetrics{
		Timeline:   timeline,
		UITimeline: uiTimeline,
		Iterations: e.Iterations(IterationPrefix),
		Usage:      e.usage(""),
		UIUsage:    e.usage(UIPrefix),
		Results: models.ResultSummary{
			TotalTests:  e.Numeric(LabelTotalTests),
			TestsPassed: e.Numeric(LabelTestsPassed),
			TestsFailed: e.Numeric(LabelTestsFailed),
			PassRate:    NormalizeRate(e.Numeric(LabelPassRate)),
		},
		TotalMinutes: Minutes(timeline.Get(LabelGenerationStarted), timeline.Get(LabelAllTestsPassed)),
		UIMinutes: Minutes(
			uiTimeline.Get(UIPrefix+LabelGenerationStarted),
			uiTimeline.Get(UIPrefix+LabelAllTestsPassed),
		),
	}

	if !m.Results.PassRate.Valid && m.Results.TotalTests.Valid && m.Results.TotalTests.Value > 0 && m.Results.TestsPassed.Valid {
		m.Results.PassRate = NormalizeRate(models.Num(m.Results.TestsPassed.Value / m.Results.TotalTests.Value))
	}
	return m
}

// timeline extracts the milestone set, keeping contract order. Each
// milestone keeps its full (prefixed) label so consumers see the exact
// vocabulary the report used.
func (e *Extractor) timeline(prefix string, labels []string) models.Timeline {
	t := make(models.Timeline, 0, len(labels))
	for _, label := range labels {
		full := prefix + label
		t = append(t, models.Milestone{Label: full, At: e.Timestamp(full)})
	}
	return t
}

// usage extracts the token/request/cost counters for one generation
// phase. Provenance defaults to unknown when absent or unrecognized.
func (e *Extractor) usage(prefix string) models.UsageRecord {
	source := e.Text(prefix + LabelUsageSource)
	switch source {
	case models.UsageSourceTool, models.UsageSourceEstimate, models.UsageSourceUnknown:
	default:
		if source != models.Unset {
			e.log.Warn("unrecognized usage provenance in report", "value", source)
		}
		source = models.UsageSourceUnknown
	}

	return models.UsageRecord{
		ModelName:     e.Text(prefix + LabelModelName),
		APIRequests:   e.Numeric(prefix + LabelAPIRequests),
		TotalTokens:   e.Numeric(prefix + LabelTotalTokens),
		InputTokens:   e.Numeric(prefix + LabelInputTokens),
		OutputTokens:  e.Numeric(prefix + LabelOutputTokens),
		EstimatedCost: e.Numeric(prefix + LabelEstimatedCost),
		CostCurrency:  e.Text(prefix + LabelCostCurrency),
		Source:        source,
	}
}
