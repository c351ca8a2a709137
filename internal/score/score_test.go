package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
		ok   bool
	}{
		{"plain decimal", "4.68", 4.68, true},
		{"plain integer", "5", 5.0, true},
		{"surrounding whitespace", "  4.2  ", 4.2, true},
		{"fraction", "4.93/5.00", 4.93, true},
		{"fraction with spaces", "4.5 / 5", 4.5, true},
		{"sbm phrase", "SBM 4.25 overall this month", 4.25, true},
		{"scored a phrase", "Every site scored a 5 this month", 5.0, true},
		{"out of phrase", "We got 4.5 out of 5 across the board", 4.5, true},
		{"score of phrase", "Overall score of 4.8", 4.8, true},
		{"slash five in text", "The team earned 4.7/5 again", 4.7, true},
		{"all sites phrase", "All sites a 5", 5.0, true},
		{"multi-site average", "Bloomfield – 4.0 St. Louis – 5.0", 4.5, true},
		{"out-of-range numbers dropped", "Reviewed on 2023: scores were 4.0 and 5.0", 4.5, true},
		{"empty", "", 0, false},
		{"whitespace only", "   ", 0, false},
		{"n/a", "N/A", 0, false},
		{"n/a lowercase", "n/a", 0, false},
		{"no numbers", "No review held", 0, false},
		{"only noise numbers", "Building 2023", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Parse(tc.in)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.InDelta(t, tc.want, got, 1e-9)
			}
		})
	}
}

// Direct numeric input passes through unfiltered; the range check only guards
// the phrase and multi-site strategies.
func TestParse_DirectNumberNotClamped(t *testing.T) {
	got, ok := Parse("7.5")
	require.True(t, ok)
	assert.Equal(t, 7.5, got)
}

func TestParse_PhraseRespectsRange(t *testing.T) {
	// "scored a 2023" is out of range for the phrase strategy, but 4.0 and
	// 5.0 survive the multi-site fallback.
	got, ok := Parse("scored a 2023, sites at 4.0 and 5.0")
	require.True(t, ok)
	assert.InDelta(t, 4.5, got, 1e-9)
}

func TestHasSiteBreakdown(t *testing.T) {
	assert.True(t, HasSiteBreakdown("Bloomfield – 4.0 St. Louis – 5.0"))
	assert.True(t, HasSiteBreakdown("Plant A — 5"))
	assert.False(t, HasSiteBreakdown("4.68"))
	assert.False(t, HasSiteBreakdown("great month – no numbers"))
	assert.False(t, HasSiteBreakdown(""))
}
