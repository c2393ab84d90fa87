package result

import (
	"testing"
	"time"

	"benchreport/internal/models"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase passthrough", "cursor", "cursor"},
		{"uppercase", "Claude Code", "claude-code"},
		{"punctuation collapsed", "Tool!! (beta)", "tool-beta"},
		{"numbers preserved", "agent2", "agent2"},
		{"repeated separators collapse", "a___b", "a-b"},
		{"edges trimmed", "  spaced  ", "spaced"},
		{"hyphen preserved", "gh-copilot", "gh-copilot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	id := models.RunIdentity{
		ToolName:  "Claude Code",
		RunNumber: 1,
		Model:     models.ModelA,
		APIStyle:  models.APIStyleREST,
	}
	at := time.Date(2025, 12, 17, 9, 30, 45, 0, time.UTC)

	got := Filename(id, at)
	want := "claude-code_modelA_REST_run1_20251217T0930.json"
	if got != want {
		t.Errorf("Filename = %q, want %q", got, want)
	}

	// Same identity and instant always name the same artifact.
	if again := Filename(id, at); again != got {
		t.Errorf("Filename is not idempotent: %q vs %q", again, got)
	}

	// Different tool names only collide when they normalize to the
	// same slug.
	other := id
	other.ToolName = "claude code"
	if Filename(other, at) != got {
		t.Error("equivalent slugs must produce the same filename")
	}
	other.ToolName = "cursor"
	if Filename(other, at) == got {
		t.Error("distinct slugs must not collide")
	}
}

func TestFilename_MatchesValidator(t *testing.T) {
	id := models.RunIdentity{
		ToolName:  "GH Copilot (CLI)",
		RunNumber: 2,
		Model:     models.ModelB,
		APIStyle:  models.APIStyleGraphQL,
	}
	name := Filename(id, time.Date(2026, 1, 2, 23, 59, 0, 0, time.UTC))

	if violations := validateFilename(name); len(violations) != 0 {
		t.Errorf("composed filename %q fails its own validator: %v", name, violations)
	}
}
