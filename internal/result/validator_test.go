package result

import (
	"testing"
	"time"

	"benchreport/internal/models"
)

func hasViolation(violations []Violation, field, rule string) bool {
	for _, v := range violations {
		if v.Field == field && v.Rule == rule {
			return true
		}
	}
	return false
}

func TestValidate_ValidDocument(t *testing.T) {
	doc, err := Build(testIdentity(), apiOnlyMetrics(), models.SchemaV2, models.Artifacts{}, models.Submission{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	data, err := doc.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	filename := Filename(testIdentity(), time.Date(2025, 1, 1, 1, 1, 0, 0, time.UTC))

	if violations := Validate(data, filename); len(violations) != 0 {
		t.Errorf("valid document reported violations: %v", violations)
	}
}

func TestValidate_InvalidModelTagInFilename(t *testing.T) {
	doc, _ := Build(testIdentity(), apiOnlyMetrics(), models.SchemaV1, models.Artifacts{}, models.Submission{})
	data, _ := doc.Encode()

	violations := Validate(data, "Tool_modelC_REST_run1_20250101T0101.json")
	if !hasViolation(violations, "filename.model", RuleEnum) {
		t.Errorf("expected a violation naming filename.model, got %v", violations)
	}
	// The uppercase slug is a separate discrete violation.
	if !hasViolation(violations, "filename.tool_slug", RuleNaming) {
		t.Errorf("expected a violation naming filename.tool_slug, got %v", violations)
	}
}

func TestValidate_FilenameShape(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		field    string
		rule     string
	}{
		{"missing extension", "tool_modelA_REST_run1_20250101T0101", "filename", RuleNaming},
		{"wrong segment count", "tool_modelA_REST.json", "filename", RuleNaming},
		{"bad api style", "tool_modelA_SOAP_run1_20250101T0101.json", "filename.api_style", RuleEnum},
		{"bad run number", "tool_modelA_REST_run3_20250101T0101.json", "filename.run_number", RuleRange},
		{"bad timestamp", "tool_modelA_REST_run1_2025T01.json", "filename.timestamp", RuleNaming},
	}

	doc, _ := Build(testIdentity(), apiOnlyMetrics(), models.SchemaV1, models.Artifacts{}, models.Submission{})
	data, _ := doc.Encode()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := Validate(data, tt.filename)
			if !hasViolation(violations, tt.field, tt.rule) {
				t.Errorf("Validate(%q): expected %s/%s violation, got %v", tt.filename, tt.field, tt.rule, violations)
			}
		})
	}
}

func TestValidate_MalformedDocument(t *testing.T) {
	violations := Validate([]byte("{not json"), "tool_modelA_REST_run1_20250101T0101.json")
	if !hasViolation(violations, "document", RuleWellFormed) {
		t.Errorf("expected a well-formed violation, got %v", violations)
	}
}

func TestValidate_RequiredIdentityFields(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
		rule  string
	}{
		{
			name:  "missing schema version",
			doc:   `{"tool_name":"cursor","model":"A"}`,
			field: "schema_version",
			rule:  RuleRequired,
		},
		{
			name:  "unknown schema version",
			doc:   `{"schema_version":"9.9","tool_name":"cursor","model":"A"}`,
			field: "schema_version",
			rule:  RuleEnum,
		},
		{
			name:  "missing tool name",
			doc:   `{"schema_version":"1.0","model":"A"}`,
			field: "tool_name",
			rule:  RuleRequired,
		},
		{
			name:  "invalid model tag",
			doc:   `{"schema_version":"1.0","tool_name":"cursor","model":"C"}`,
			field: "model",
			rule:  RuleEnum,
		},
		{
			name:  "nested v2 identity accepted",
			doc:   `{"schema_version":"2.0","tool":{"name":"cursor"},"run":{"model":"B","number":2}}`,
			field: "",
			rule:  "",
		},
		{
			name:  "run number out of range",
			doc:   `{"schema_version":"1.0","tool_name":"cursor","model":"A","run_number":7}`,
			field: "run_number",
			rule:  RuleRange,
		},
	}

	goodName := "cursor_modelA_REST_run1_20250101T0101.json"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := Validate([]byte(tt.doc), goodName)
			if tt.field == "" {
				if len(violations) != 0 {
					t.Errorf("expected no violations, got %v", violations)
				}
				return
			}
			if !hasViolation(violations, tt.field, tt.rule) {
				t.Errorf("expected %s/%s violation, got %v", tt.field, tt.rule, violations)
			}
		})
	}
}
