package report

import (
	"strconv"
	"strings"

	"benchreport/internal/models"
)

// ParseNumeric normalizes a raw numeric literal into a plain number.
// One shared rule set serves every numeric field so token counts,
// request counts and pass rates never diverge in parsing behavior:
//
//   - a trailing M or m multiplies by 1,000,000
//   - a trailing K or k multiplies by 1,000
//   - a trailing % is stripped; the value is returned as given
//     (percentage semantics belong to the caller)
//   - a leading currency marker ($) is stripped
//   - anything else parses as an integer or decimal
//
// Unparseable input yields the unset sentinel, never an error.
func ParseNumeric(literal string) models.Numeric {
	s := strings.TrimSpace(literal)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" || s == models.Unset {
		return models.Numeric{}
	}

	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "M"), strings.HasSuffix(s, "m"):
		multiplier = 1_000_000
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "K"), strings.HasSuffix(s, "k"):
		multiplier = 1_000
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "%"):
		s = s[:len(s)-1]
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return models.Numeric{}
	}
	return models.Num(v * multiplier)
}
