// Package loader turns a month selection into sanitized CSV rows: candidate
// filename resolution, charset-fallback decoding, and CSV parsing.
package loader

import (
	"os"
	"path/filepath"
	"regexp"

	"go.uber.org/zap"

	"github.com/sbm-group/scorecard-cli/internal/model"
	"github.com/sbm-group/scorecard-cli/internal/schema"
)

// monthFilePattern matches the standard export name, e.g.
// "December_2025_Scorecards.csv".
var monthFilePattern = regexp.MustCompile(`(?i)^(\w+)_(\d{4})_Scorecards\.csv$`)

// Discover scans the scorecards directory for months with an existing data
// file: standard-named exports plus any month whose cohort rule names a legacy
// file that exists. Returns months newest first.
func Discover(dir string, rules *schema.Rules) []model.Month {
	seen := map[string]model.Month{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		zap.L().Warn("loader: scorecards directory unreadable",
			zap.String("dir", dir),
			zap.Error(err),
		)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := monthFilePattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		month, err := model.ParseMonthKey(m[1] + "_" + m[2])
		if err != nil {
			continue
		}
		seen[month.Key()] = month
	}

	for key, rule := range rules.Cohorts {
		if _, ok := seen[key]; ok {
			continue
		}
		month, err := model.ParseMonthKey(key)
		if err != nil {
			continue
		}
		for _, name := range rule.Filenames {
			if fileExists(filepath.Join(dir, name)) {
				seen[key] = month
				break
			}
		}
	}

	months := make([]model.Month, 0, len(seen))
	for _, m := range seen {
		months = append(months, m)
	}
	model.SortMonthsDesc(months)
	return months
}

// Resolve picks the input file for a month: the cohort rule's legacy
// candidates first, in priority order, then the standard name. The boolean is
// false when no candidate exists, which callers treat as "no data yet" rather
// than an error.
func Resolve(dir string, month model.Month, rule schema.CohortRule) (string, bool) {
	for _, name := range rule.Filenames {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path, true
		}
	}
	path := filepath.Join(dir, month.Key()+"_Scorecards.csv")
	if fileExists(path) {
		return path, true
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
