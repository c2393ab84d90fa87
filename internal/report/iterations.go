package report

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"

	"benchreport/internal/models"
)

// IterationPrefix is the field family prefix for per-attempt records:
// test_run_N_start, test_run_N_end, test_run_N_total, ...
const IterationPrefix = "test_run"

// Iterations discovers every ordinal of the prefix field family and
// builds one record per ordinal, sorted ascending regardless of the
// order fields appear in the text.
//
// An ordinal is included only when both its start and end timestamps
// resolve; a record with a single timestamp is dropped rather than
// padded, so a phantom iteration is never reported. Duplicate ordinals
// collapse to the first occurrence (Lookup is first-match-wins).
func (e *Extractor) Iterations(prefix string) []models.IterationRecord {
	ordinalPattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(prefix) + `_(\d+)_`)

	seen := map[int]struct{}{}
	var ordinals []int
	for _, m := range ordinalPattern.FindAllStringSubmatch(e.text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		ordinals = append(ordinals, n)
	}
	sort.Ints(ordinals)

	var records []models.IterationRecord
	for _, n := range ordinals {
		field := func(name string) string {
			return fmt.Sprintf("%s_%d_%s", prefix, n, name)
		}

		start := e.Timestamp(field("start"))
		end := e.Timestamp(field("end"))
		if !start.IsSet() || !end.IsSet() {
			e.log.Debug("dropping partial iteration record", "prefix", prefix, "ordinal", n)
			continue
		}

		rec := models.IterationRecord{
			Ordinal:         n,
			Start:           start,
			End:             end,
			DurationMinutes: Minutes(start, end),
			Total:           e.Numeric(field("total")),
			Passed:          e.Numeric(field("passed")),
			Failed:          e.Numeric(field("failed")),
			PassRate:        NormalizeRate(e.Numeric(field("pass_rate"))),
		}
		if !rec.PassRate.Valid && rec.Total.Valid && rec.Total.Value > 0 && rec.Passed.Valid {
			rec.PassRate = models.Num(roundRate(rec.Passed.Value / rec.Total.Value))
		}
		records = append(records, rec)
	}
	return records
}

// NormalizeRate resolves percentage semantics for a pass rate: the
// numeric normalizer returns "95%" as 95, so any value above 1.0 is
// treated as a percentage and scaled into the [0.0, 1.0] ratio range.
func NormalizeRate(rate models.Numeric) models.Numeric {
	if !rate.Valid {
		return rate
	}
	v := rate.Value
	if v > 1.0 {
		v /= 100
	}
	return models.Num(roundRate(math.Min(math.Max(v, 0), 1)))
}

func roundRate(v float64) float64 {
	return math.Round(v*10000) / 10000
}
