package schema

import (
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// CohortRule captures the one-off handling a monthly export needs. New months
// get new rules in the cohorts file instead of new branches in code.
type CohortRule struct {
	// ForceContinuation uses the continuation column set unconditionally,
	// for cohorts collected entirely on the restructured form.
	ForceContinuation bool `yaml:"force_continuation"`

	// MinRowID drops rows with a numeric identifier below the cutoff. Used
	// when a cohort's export is known to carry rows duplicated from a prior
	// month's export.
	MinRowID int `yaml:"min_row_id"`

	// Filenames lists legacy candidate filenames tried, in order, before the
	// standard "<Month>_<Year>_Scorecards.csv" name.
	Filenames []string `yaml:"filenames"`

	// SubIdentity splits accounts into separate records per facility-manager
	// designation when the designation field is populated.
	SubIdentity bool `yaml:"sub_identity"`
}

// Rules is the declarative per-month configuration plus the global
// multi-entry merge list.
type Rules struct {
	Cohorts map[string]CohortRule `yaml:"cohorts"`

	// MergeAccounts submit one review per physical site per month; their rows
	// are merged into a single record rather than latest-wins.
	MergeAccounts []string `yaml:"merge_accounts"`
}

// DefaultRules returns the built-in cohort configuration.
func DefaultRules() *Rules {
	return &Rules{
		Cohorts: map[string]CohortRule{
			"December_2025": {
				ForceContinuation: true,
				MinRowID:          62,
				Filenames:         []string{"Scorecard Review Executive Summary(Sheet1) (10).csv"},
				SubIdentity:       true,
			},
			"November_2025": {
				Filenames: []string{
					"Scorecard Review Executive Summary(Sheet1) (8).csv",
					"Scorecard Review Executive Summary(Sheet1) (5).csv",
				},
			},
		},
		MergeAccounts: []string{"Gilead Sciences", "Nike", "General Motors"},
	}
}

// LoadRules reads cohort rules from a YAML file, overlaying the built-in
// defaults. An empty path returns the defaults.
func LoadRules(path string) (*Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "schema: read cohort rules %s", path)
	}

	var f Rules
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrapf(err, "schema: parse cohort rules %s", path)
	}

	for key, rule := range f.Cohorts {
		rules.Cohorts[key] = rule
	}
	if len(f.MergeAccounts) > 0 {
		rules.MergeAccounts = f.MergeAccounts
	}

	zap.L().Info("schema: cohort rules loaded",
		zap.String("path", path),
		zap.Int("cohorts", len(rules.Cohorts)),
	)
	return rules, nil
}

// ForMonth returns the rule for a month key, zero-valued when the month has
// no special handling.
func (r *Rules) ForMonth(monthKey string) CohortRule {
	return r.Cohorts[monthKey]
}

// ShouldMerge reports whether an account is on the multi-entry merge list.
func (r *Rules) ShouldMerge(account string) bool {
	for _, a := range r.MergeAccounts {
		if a == account {
			return true
		}
	}
	return false
}
