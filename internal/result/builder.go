// Package result maps canonical metrics into versioned result
// documents, derives their canonical filenames and validates them.
package result

import (
	"fmt"

	"benchreport/internal/models"
)

// Build maps canonical metrics plus run identity into the document
// shape selected by schemaVersion. It is a pure function: two fixed
// mapping strategies, no mutable state, no side effects.
//
// In the nested v2 shape the UI section is omitted entirely when no UI
// generation phase was observed, rather than emitted as a record of
// all-unset fields.
func Build(id models.RunIdentity, m models.CanonicalMetrics, schemaVersion string, art models.Artifacts, sub models.Submission) (models.ResultDocument, error) {
	switch schemaVersion {
	case models.SchemaV1:
		return models.ResultDocument{Version: schemaVersion, V1: buildV1(id, m, art, sub)}, nil
	case models.SchemaV2:
		return models.ResultDocument{Version: schemaVersion, V2: buildV2(id, m, art, sub)}, nil
	default:
		return models.ResultDocument{}, fmt.Errorf("unsupported schema version %q", schemaVersion)
	}
}

func buildV1(id models.RunIdentity, m models.CanonicalMetrics, art models.Artifacts, sub models.Submission) *models.DocumentV1 {
	return &models.DocumentV1{
		SchemaVersion: models.SchemaV1,

		ToolName:    id.ToolName,
		ToolVersion: id.ToolVersion,
		RunID:       id.RunID,
		RunNumber:   id.RunNumber,
		Model:       id.Model,
		APIStyle:    id.APIStyle,
		SpecRef:     id.SpecRef,
		Environment: id.Environment,

		Timeline:        m.Timeline,
		Iterations:      m.Iterations,
		Usage:           m.Usage,
		Results:         m.Results,
		DurationMinutes: m.TotalMinutes,

		Artifacts:  art,
		Submission: sub,
	}
}

func buildV2(id models.RunIdentity, m models.CanonicalMetrics, art models.Artifacts, sub models.Submission) *models.DocumentV2 {
	doc := &models.DocumentV2{
		SchemaVersion: models.SchemaV2,

		Tool: models.ToolInfo{Name: id.ToolName, Version: id.ToolVersion},
		Run: models.RunInfo{
			ID:          id.RunID,
			Number:      id.RunNumber,
			Model:       id.Model,
			APIStyle:    id.APIStyle,
			SpecRef:     id.SpecRef,
			Environment: id.Environment,
		},

		Implementations: models.Implementations{
			API: models.APIImplementation{
				Timeline:        m.Timeline,
				Iterations:      m.Iterations,
				Usage:           m.Usage,
				Results:         m.Results,
				DurationMinutes: m.TotalMinutes,
			},
		},

		Artifacts:  art,
		Submission: sub,
	}

	if m.HasUI() {
		doc.Implementations.UI = &models.UIImplementation{
			Timeline:        m.UITimeline,
			Usage:           m.UIUsage,
			DurationMinutes: m.UIMinutes,
		}
	}
	return doc
}
