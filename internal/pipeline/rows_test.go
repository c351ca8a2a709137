package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"12/5/25 9:30:00", time.Date(2025, 12, 5, 9, 30, 0, 0, time.UTC)},
		{"12/5/2025 9:30:00 AM", time.Date(2025, 12, 5, 9, 30, 0, 0, time.UTC)},
		{"12/5/2025", time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC)},
		{"2025-12-05 09:30:00", time.Date(2025, 12, 5, 9, 30, 0, 0, time.UTC)},
		{"December 5, 2025", time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got := parseTimestamp(tc.in)
		require.NotNil(t, got, "input %q", tc.in)
		assert.Equal(t, tc.want, *got, "input %q", tc.in)
	}

	assert.Nil(t, parseTimestamp(""))
	assert.Nil(t, parseTimestamp("next Tuesday"))
}

func TestParseRowID(t *testing.T) {
	assert.Equal(t, 42, parseRowID(" 42 "))
	assert.Equal(t, 0, parseRowID(""))
	assert.Equal(t, 0, parseRowID("abc"))
}

func TestCleanSubIdentity(t *testing.T) {
	assert.Equal(t, "North", cleanSubIdentity(" North "))
	assert.Equal(t, "", cleanSubIdentity("(None)"))
	assert.Equal(t, "", cleanSubIdentity(" (None) "))
}
