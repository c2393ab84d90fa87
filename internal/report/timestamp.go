package report

import (
	"log/slog"
	"time"

	"benchreport/internal/models"
)

// Extractor reads metric fields out of one report text. The text is
// never mutated; every method is a pure function of it.
type Extractor struct {
	text string
	log  *slog.Logger
}

// NewExtractor wraps a raw report text. A nil logger falls back to
// slog.Default().
func NewExtractor(text string, log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{text: text, log: log}
}

// Timestamp returns the normalized RFC3339 UTC millisecond timestamp
// for label, or the unset sentinel when the label is absent or its
// value does not parse. No timezone conversion is performed; report
// values are assumed already UTC-normalized.
func (e *Extractor) Timestamp(label string) models.Timestamp {
	raw, ok := Lookup(label, e.text)
	if !ok {
		return models.UnsetTime
	}
	value := Clean(raw)
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		e.log.Warn("malformed timestamp in report", "label", label, "value", value)
		return models.UnsetTime
	}
	return models.NewTimestamp(parsed)
}

// Numeric returns the normalized number for label, or the unset
// sentinel when the label is absent or its value does not parse.
func (e *Extractor) Numeric(label string) models.Numeric {
	raw, ok := Lookup(label, e.text)
	if !ok {
		return models.Numeric{}
	}
	n := ParseNumeric(Clean(raw))
	if !n.Valid {
		e.log.Warn("malformed numeric value in report", "label", label, "value", raw)
	}
	return n
}

// Text returns the cleaned string value for label, or the unset
// sentinel when the label is absent.
func (e *Extractor) Text(label string) string {
	raw, ok := Lookup(label, e.text)
	if !ok {
		return models.Unset
	}
	if v := Clean(raw); v != "" {
		return v
	}
	return models.Unset
}
