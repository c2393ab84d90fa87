package report

import (
	"testing"

	"benchreport/internal/models"
)

func TestExtractor_Timestamp(t *testing.T) {
	tests := []struct {
		name  string
		label string
		text  string
		want  models.Timestamp
	}{
		{
			name:  "parenthetical annotation stripped",
			label: "code_complete",
			text:  "code_complete: 2025-12-17T10:25:00.000Z (estimated)",
			want:  "2025-12-17T10:25:00.000Z",
		},
		{
			name:  "bold form",
			label: "generation_started",
			text:  "**generation_started:** 2025-12-17T09:00:00.000Z",
			want:  "2025-12-17T09:00:00.000Z",
		},
		{
			name:  "second precision normalized to milliseconds",
			label: "build_clean",
			text:  "build_clean: 2025-12-17T10:30:00Z",
			want:  "2025-12-17T10:30:00.000Z",
		},
		{
			name:  "absent label",
			label: "app_started",
			text:  "code_complete: 2025-12-17T10:25:00.000Z",
			want:  models.UnsetTime,
		},
		{
			name:  "malformed value degrades to unset, never guessed",
			label: "seed_loaded",
			text:  "seed_loaded: around lunchtime",
			want:  models.UnsetTime,
		},
		{
			name:  "empty report",
			label: "code_complete",
			text:  "",
			want:  models.UnsetTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExtractor(tt.text, nil)
			if got := e.Timestamp(tt.label); got != tt.want {
				t.Errorf("Timestamp(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestExtractor_Text(t *testing.T) {
	e := NewExtractor("model_name: claude-sonnet (via API)\n", nil)
	if got := e.Text("model_name"); got != "claude-sonnet" {
		t.Errorf("Text(model_name) = %q, want %q", got, "claude-sonnet")
	}
	if got := e.Text("cost_currency"); got != models.Unset {
		t.Errorf("Text(cost_currency) = %q, want the unset sentinel", got)
	}
}
