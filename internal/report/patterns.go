// Package report extracts structured benchmark metrics from the
// free-form markdown progress reports written by AI coding tools.
package report

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// A field may appear in several equivalent textual forms. Forms are
// tried in order, most specific first, so a looser form never shadows
// an exact key when both are present. Within a form the first
// occurrence in the text wins, which also resolves duplicate labels.
var patternForms = []string{
	`(?m)^\s*(?:[-*+]\s+)?\*\*%s:?\*\*:?\s*(.+?)\s*$`,         // **label:** value / - **label**: value
	"(?m)^\\s*(?:[-*+]\\s+)?`%s`:?\\s*(.+?)\\s*$",             // `label`: value
	`(?m)^\s*(?:[-*+]\s+)?%s\s*:\s*(.+?)\s*$`,                 // label: value
	`(?mi)\b%s\s*[:=]\s*("[^"\n]*"|` + "`[^`\n]*`" + `|\S+)`,  // embedded in a sentence
}

var (
	patternMu    sync.Mutex
	patternCache = map[string][]*regexp.Regexp{}
)

// patternsFor compiles (or returns cached) the ordered pattern list for
// a label.
func patternsFor(label string) []*regexp.Regexp {
	patternMu.Lock()
	defer patternMu.Unlock()

	if ps, ok := patternCache[label]; ok {
		return ps
	}
	quoted := regexp.QuoteMeta(label)
	ps := make([]*regexp.Regexp, 0, len(patternForms))
	for _, form := range patternForms {
		ps = append(ps, regexp.MustCompile(fmt.Sprintf(form, quoted)))
	}
	patternCache[label] = ps
	return ps
}

// Lookup returns the first raw value matched for label in text, trying
// each textual form in preference order. The second return value is
// false when no form matches.
func Lookup(label, text string) (string, bool) {
	if text == "" {
		return "", false
	}
	for _, p := range patternsFor(label) {
		if m := p.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

var parentheticalPattern = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// Clean strips markdown emphasis and quoting around a matched value,
// drops a trailing parenthetical annotation such as "(estimated)", and
// trims whitespace.
func Clean(raw string) string {
	v := strings.TrimSpace(raw)
	v = parentheticalPattern.ReplaceAllString(v, "")
	v = strings.Trim(v, "`*_\"' \t")
	return strings.TrimSpace(v)
}
