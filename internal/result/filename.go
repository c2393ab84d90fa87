package result

import (
	"fmt"
	"strings"
	"time"

	"benchreport/internal/models"
)

// compactStamp is the filename timestamp layout: 8-digit date, literal
// T, 4-digit time.
const compactStamp = "20060102T1504"

// Slugify normalizes a tool name for use in a filename: lowercase,
// every character outside [a-z0-9-] replaced with a hyphen, repeated
// hyphens collapsed, edges trimmed.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	prevHyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// Filename derives the canonical result filename for a run:
//
//	{tool-slug}_model{A|B}_{REST|GraphQL}_run{1|2}_{YYYYMMDD}T{HHMM}.json
//
// It depends only on the run identity and the supplied instant, never
// on metrics content, so the same identity always names the same
// artifact.
func Filename(id models.RunIdentity, at time.Time) string {
	return fmt.Sprintf("%s_model%s_%s_run%d_%s.json",
		Slugify(id.ToolName),
		id.Model,
		id.APIStyle,
		id.RunNumber,
		at.UTC().Format(compactStamp),
	)
}
