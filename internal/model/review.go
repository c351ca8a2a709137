package model

import "time"

// Vertical is a business-category grouping of canonical accounts.
type Vertical string

const (
	VerticalAviation      Vertical = "Aviation"
	VerticalAutomotive    Vertical = "Automotive"
	VerticalManufacturing Vertical = "Manufacturing"
	VerticalTechnology    Vertical = "Technology"
	VerticalLifeScience   Vertical = "Life Science"
	VerticalFinance       Vertical = "Finance"
	VerticalDistribution  Vertical = "Distribution"
	VerticalRDEducation   Vertical = "R&D / Education / Other"

	// VerticalOther buckets accounts seen in the data but absent from the roster.
	VerticalOther Vertical = "Other"
)

// ReviewRow is one survey response after schema reconciliation, account
// resolution, score parsing, and date parsing. Rows whose account resolves to
// the exclusion sentinel never reach this type.
type ReviewRow struct {
	ID             int        `json:"id,omitempty"` // numeric row identifier, 0 when absent
	Account        string     `json:"account"`      // canonical account name
	RawAccount     string     `json:"raw_account"`  // label as it appeared in the export
	SubIdentity    string     `json:"sub_identity,omitempty"`
	Vertical       Vertical   `json:"vertical"`
	Director       string     `json:"director,omitempty"`
	Attendees      string     `json:"attendees,omitempty"`
	Summary        string     `json:"summary,omitempty"`
	Feedback       string     `json:"feedback,omitempty"`
	ActionItems    string     `json:"action_items,omitempty"`
	NextReview     string     `json:"next_review,omitempty"`
	ScoreRaw       string     `json:"score_raw,omitempty"`
	Score          *float64   `json:"score,omitempty"`
	ReviewDate     *time.Time `json:"review_date,omitempty"`
	CompletionTime *time.Time `json:"completion_time,omitempty"`
	Raw            map[string]string `json:"-"` // full source fields for the detail view
}

// DisplayKey returns the account key the presentation layer groups by:
// the canonical name, decorated with the sub-identity when present.
func (r ReviewRow) DisplayKey() string {
	if r.SubIdentity == "" {
		return r.Account
	}
	return r.Account + " (" + r.SubIdentity + ")"
}

// AccountRecord is the per-account output unit handed to the presentation
// layer. Built fresh every load cycle, never persisted.
type AccountRecord struct {
	Account        string     `json:"account"` // display key (may carry a sub-identity suffix)
	Canonical      string     `json:"canonical"`
	Vertical       Vertical   `json:"vertical"`
	HasData        bool       `json:"has_data"`
	Score          *float64   `json:"score,omitempty"`
	ReviewDate     *time.Time `json:"review_date,omitempty"`
	CompletionTime *time.Time `json:"completion_time,omitempty"`
	ResponseCount  int        `json:"response_count"`
	Director       string     `json:"director,omitempty"`
	Attendees      string     `json:"attendees,omitempty"`
	Summary        string     `json:"summary,omitempty"`
	Feedback       string     `json:"feedback,omitempty"`
	ActionItems    string     `json:"action_items,omitempty"`
	NextReview     string     `json:"next_review,omitempty"`
	SubIdentity    string     `json:"sub_identity,omitempty"`
	Raw            map[string]string `json:"raw,omitempty"`
}

// RosterEntry pairs a canonical account with its assigned vertical.
type RosterEntry struct {
	Name     string   `json:"name"`
	Vertical Vertical `json:"vertical"`
}

// Catalog is the full output of one pipeline run: a total mapping over the
// roster (plus discovered "Other" accounts), the roster itself, and header
// metrics. Treated as read-only by callers.
type Catalog struct {
	Month   Month                     `json:"month"`
	HasFile bool                      `json:"has_file"`
	Records map[string]*AccountRecord `json:"records"`
	Roster  []RosterEntry             `json:"roster"`
	Metrics CatalogMetrics            `json:"metrics"`
}

// CatalogMetrics summarizes one load for the dashboard header.
type CatalogMetrics struct {
	AccountsWithData int        `json:"accounts_with_data"`
	AverageScore     *float64   `json:"average_score,omitempty"`
	TotalResponses   int        `json:"total_responses"`
	LatestCompletion *time.Time `json:"latest_completion,omitempty"`
}

// ComputeMetrics derives header metrics from the record mapping.
func (c *Catalog) ComputeMetrics() {
	var m CatalogMetrics
	var scoreSum float64
	var scoreN int
	for _, rec := range c.Records {
		if !rec.HasData {
			continue
		}
		m.AccountsWithData++
		m.TotalResponses += rec.ResponseCount
		if rec.Score != nil {
			scoreSum += *rec.Score
			scoreN++
		}
		if rec.CompletionTime != nil {
			if m.LatestCompletion == nil || rec.CompletionTime.After(*m.LatestCompletion) {
				m.LatestCompletion = rec.CompletionTime
			}
		}
	}
	if scoreN > 0 {
		avg := scoreSum / float64(scoreN)
		m.AverageScore = &avg
	}
	c.Metrics = m
}
