// Package score extracts a numeric scorecard score from free-text survey
// answers. Respondents type anything from "4.68" to "Every site scored a 5
// this month", so extraction runs an ordered list of strategies and takes the
// first that succeeds.
package score

import (
	"regexp"
	"strconv"
	"strings"
)

// Bounds of a valid scorecard score. Numbers outside the range are assumed to
// be noise (years, phone fragments) and are ignored by the phrase and
// multi-site strategies rather than treated as errors.
const (
	Min = 0.0
	Max = 5.0
)

// phrasePatterns recognize common narrative phrasings, tried in order. Each
// has exactly one capture group holding the candidate number.
var phrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`sbm\s+(\d+\.?\d*)`),                              // "SBM 4.25"
	regexp.MustCompile(`scored?\s+(?:a\s+)?(\d+\.?\d*)`),                 // "scored a 5"
	regexp.MustCompile(`(\d+\.?\d*)\s+out\s+of`),                         // "5 out of 5"
	regexp.MustCompile(`scored?\s+(?:of\s+)?(\d+\.?\d*)`),                // "score of 5"
	regexp.MustCompile(`(\d+\.?\d*)/5`),                                  // "5/5"
	regexp.MustCompile(`all\s+(?:sites?\s+)?(?:scored?\s+)?(?:a\s+)?(\d+\.?\d*)`), // "all sites scored a 5"
}

var numberPattern = regexp.MustCompile(`\d+\.?\d*`)

// Parse extracts a score from raw free text. The second return value is false
// when no score could be extracted ("N/A", blank, or no numeric content).
//
// Plain numbers and fraction numerators are returned as-is; only the phrase
// and multi-site strategies apply the [Min, Max] sanity filter.
func Parse(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "N/A") {
		return 0, false
	}

	// Directly numeric: "4.68", "5", "4.0".
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}

	// Fraction: "4.93/5.00" scores 4.93.
	if idx := strings.IndexByte(s, '/'); idx >= 0 {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s[:idx]), 64); err == nil {
			return v, true
		}
	}

	// Narrative phrasings.
	lower := strings.ToLower(s)
	for _, pat := range phrasePatterns {
		m := pat.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && inRange(v) {
			return v, true
		}
	}

	// Multi-site free text like "Bloomfield – 4.0 St. Louis – 5.0": average
	// every in-range number. Out-of-range numbers are silently dropped.
	var sum float64
	var n int
	for _, numStr := range numberPattern.FindAllString(s, -1) {
		v, err := strconv.ParseFloat(numStr, 64)
		if err != nil || !inRange(v) {
			continue
		}
		sum += v
		n++
	}
	if n > 0 {
		return sum / float64(n), true
	}

	return 0, false
}

// HasSiteBreakdown reports whether a raw score field looks like per-site
// notation (dash-separated sites with at least one digit), which the
// aggregator surfaces as a breakdown preamble on the summary.
func HasSiteBreakdown(raw string) bool {
	if !strings.ContainsAny(raw, "0123456789") {
		return false
	}
	return strings.Contains(raw, "–") || strings.Contains(raw, "—")
}

func inRange(v float64) bool {
	return v >= Min && v <= Max
}
