package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

// Month identifies one monthly scorecard export, e.g. December 2025.
type Month struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

var monthIndex = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// ParseMonthKey parses a file-style month key such as "December_2025".
func ParseMonthKey(key string) (Month, error) {
	parts := strings.SplitN(strings.TrimSpace(key), "_", 2)
	if len(parts) != 2 {
		return Month{}, eris.Errorf("model: invalid month key %q", key)
	}
	lower := strings.ToLower(parts[0])
	if _, ok := monthIndex[lower]; !ok {
		return Month{}, eris.Errorf("model: unknown month name %q", parts[0])
	}
	name := strings.ToUpper(lower[:1]) + lower[1:]
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return Month{}, eris.Wrapf(err, "model: invalid year in month key %q", key)
	}
	return Month{Name: name, Year: year}, nil
}

// Key returns the file-style key, e.g. "December_2025".
func (m Month) Key() string {
	return fmt.Sprintf("%s_%d", m.Name, m.Year)
}

// Display returns the human-readable form, e.g. "December 2025".
func (m Month) Display() string {
	return fmt.Sprintf("%s %d", m.Name, m.Year)
}

// Time returns the first instant of the month, used for ordering.
func (m Month) Time() time.Time {
	mon, ok := monthIndex[strings.ToLower(m.Name)]
	if !ok {
		return time.Time{}
	}
	return time.Date(m.Year, mon, 1, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether the month is unset.
func (m Month) IsZero() bool {
	return m.Name == "" && m.Year == 0
}

// SortMonthsDesc orders months newest first.
func SortMonthsDesc(months []Month) {
	sort.Slice(months, func(i, j int) bool {
		return months[i].Time().After(months[j].Time())
	})
}
