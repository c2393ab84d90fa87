package report

import (
	"math"

	"benchreport/internal/models"
)

// Minutes returns the elapsed minutes between start and end, rounded to
// two decimal places. The result is unset when either input is unset or
// when end precedes start. Pure and stateless; used both for the
// overall run duration and for per-iteration durations.
func Minutes(start, end models.Timestamp) models.Numeric {
	st, ok := start.Time()
	if !ok {
		return models.Numeric{}
	}
	et, ok := end.Time()
	if !ok {
		return models.Numeric{}
	}
	if et.Before(st) {
		return models.Numeric{}
	}
	minutes := et.Sub(st).Minutes()
	return models.Num(math.Round(minutes*100) / 100)
}
