package result

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"benchreport/internal/models"
)

// Violation names one broken rule on one field. Failures are reported
// as a list of discrete violations rather than a single boolean so an
// operator can correct a document without re-running the pipeline.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Rule identifiers used in violations.
const (
	RuleWellFormed = "well-formed"
	RuleRequired   = "required"
	RuleEnum       = "enum"
	RuleRange      = "range"
	RuleNaming     = "naming-convention"
)

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s [%s]", v.Field, v.Message, v.Rule)
}

var (
	slugPattern  = regexp.MustCompile(`^[a-z0-9-]+$`)
	stampPattern = regexp.MustCompile(`^\d{8}T\d{4}$`)
)

// Validate checks a serialized result document and the filename it
// claims. It returns the empty slice for a valid document; it never
// returns an error, because every failure mode is a violation.
func Validate(data []byte, filename string) []Violation {
	var violations []Violation

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		violations = append(violations, Violation{
			Field:   "document",
			Rule:    RuleWellFormed,
			Message: fmt.Sprintf("does not parse as JSON: %v", err),
		})
		return append(violations, validateFilename(filename)...)
	}

	violations = append(violations, validateFilename(filename)...)
	violations = append(violations, validateIdentity(doc)...)
	return violations
}

// validateFilename checks the canonical pattern segment by segment so a
// violation names the exact part that broke.
func validateFilename(filename string) []Violation {
	var violations []Violation

	name, ok := strings.CutSuffix(filename, ".json")
	if !ok {
		return []Violation{{
			Field:   "filename",
			Rule:    RuleNaming,
			Message: fmt.Sprintf("%q must end in .json", filename),
		}}
	}

	parts := strings.Split(name, "_")
	if len(parts) != 5 {
		return []Violation{{
			Field:   "filename",
			Rule:    RuleNaming,
			Message: fmt.Sprintf("%q must have form {tool-slug}_model{A|B}_{REST|GraphQL}_run{1|2}_{YYYYMMDD}T{HHMM}.json", filename),
		}}
	}

	if !slugPattern.MatchString(parts[0]) {
		violations = append(violations, Violation{
			Field:   "filename.tool_slug",
			Rule:    RuleNaming,
			Message: fmt.Sprintf("%q must match [a-z0-9-]+", parts[0]),
		})
	}
	if parts[1] != "model"+models.ModelA && parts[1] != "model"+models.ModelB {
		violations = append(violations, Violation{
			Field:   "filename.model",
			Rule:    RuleEnum,
			Message: fmt.Sprintf("%q must be modelA or modelB", parts[1]),
		})
	}
	if parts[2] != models.APIStyleREST && parts[2] != models.APIStyleGraphQL {
		violations = append(violations, Violation{
			Field:   "filename.api_style",
			Rule:    RuleEnum,
			Message: fmt.Sprintf("%q must be REST or GraphQL", parts[2]),
		})
	}
	if parts[3] != "run1" && parts[3] != "run2" {
		violations = append(violations, Violation{
			Field:   "filename.run_number",
			Rule:    RuleRange,
			Message: fmt.Sprintf("%q must be run1 or run2", parts[3]),
		})
	}
	if !stampPattern.MatchString(parts[4]) {
		violations = append(violations, Violation{
			Field:   "filename.timestamp",
			Rule:    RuleNaming,
			Message: fmt.Sprintf("%q must be an 8-digit date, T, 4-digit time", parts[4]),
		})
	}
	return violations
}

// validateIdentity checks the required identity fields in either schema
// shape (flat v1 keeps them top-level, nested v2 under tool/run).
func validateIdentity(doc map[string]any) []Violation {
	var violations []Violation

	schemaVersion := stringAt(doc, "schema_version")
	switch schemaVersion {
	case "":
		violations = append(violations, Violation{
			Field:   "schema_version",
			Rule:    RuleRequired,
			Message: "must be present and non-empty",
		})
	case models.SchemaV1, models.SchemaV2:
	default:
		violations = append(violations, Violation{
			Field:   "schema_version",
			Rule:    RuleEnum,
			Message: fmt.Sprintf("%q is not a supported schema version", schemaVersion),
		})
	}

	toolName := stringAt(doc, "tool_name")
	if toolName == "" {
		toolName = stringAt(doc, "tool", "name")
	}
	if toolName == "" {
		violations = append(violations, Violation{
			Field:   "tool_name",
			Rule:    RuleRequired,
			Message: "must be present and non-empty",
		})
	}

	model := stringAt(doc, "model")
	if model == "" {
		model = stringAt(doc, "run", "model")
	}
	switch model {
	case "":
		violations = append(violations, Violation{
			Field:   "model",
			Rule:    RuleRequired,
			Message: "must be present and non-empty",
		})
	case models.ModelA, models.ModelB:
	default:
		violations = append(violations, Violation{
			Field:   "model",
			Rule:    RuleEnum,
			Message: fmt.Sprintf("%q must be %s or %s", model, models.ModelA, models.ModelB),
		})
	}

	apiStyle := stringAt(doc, "api_style")
	if apiStyle == "" {
		apiStyle = stringAt(doc, "run", "api_style")
	}
	if apiStyle != "" && apiStyle != models.APIStyleREST && apiStyle != models.APIStyleGraphQL {
		violations = append(violations, Violation{
			Field:   "api_style",
			Rule:    RuleEnum,
			Message: fmt.Sprintf("%q must be %s or %s", apiStyle, models.APIStyleREST, models.APIStyleGraphQL),
		})
	}

	if n, ok := numberAt(doc, "run_number"); !ok {
		if n, ok = numberAt(doc, "run", "number"); ok && n != 1 && n != 2 {
			violations = append(violations, runNumberViolation(n))
		}
	} else if n != 1 && n != 2 {
		violations = append(violations, runNumberViolation(n))
	}

	return violations
}

func runNumberViolation(n float64) Violation {
	return Violation{
		Field:   "run_number",
		Rule:    RuleRange,
		Message: fmt.Sprintf("%v must be 1 or 2", n),
	}
}

// stringAt walks nested objects and returns the string leaf, or "".
func stringAt(doc map[string]any, path ...string) string {
	cur := any(doc)
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur = m[key]
	}
	s, _ := cur.(string)
	return s
}

// numberAt walks nested objects and returns the numeric leaf.
func numberAt(doc map[string]any, path ...string) (float64, bool) {
	cur := any(doc)
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return 0, false
		}
		cur = m[key]
	}
	n, ok := cur.(float64)
	return n, ok
}
