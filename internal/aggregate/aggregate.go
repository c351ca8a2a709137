// Package aggregate collapses resolved review rows into exactly one account
// record per display key and guarantees the output mapping is total over the
// roster.
package aggregate

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sbm-group/scorecard-cli/internal/model"
	"github.com/sbm-group/scorecard-cli/internal/roster"
	"github.com/sbm-group/scorecard-cli/internal/schema"
	"github.com/sbm-group/scorecard-cli/internal/score"
)

// Build groups rows by display key and emits the full catalog: one record per
// group, plus a "no data" record for every roster account with no rows, plus
// discovered accounts outside the roster.
func Build(month model.Month, hasFile bool, rows []model.ReviewRow, ros *roster.Roster, rules *schema.Rules) *model.Catalog {
	cat := &model.Catalog{
		Month:   month,
		HasFile: hasFile,
		Records: make(map[string]*model.AccountRecord, ros.Len()+8),
		Roster:  ros.Entries(),
	}

	groups := groupRows(rows)

	for key, group := range groups {
		canonical := group[0].Account
		sortGroup(group)

		var rec *model.AccountRecord
		if rules.ShouldMerge(canonical) && len(group) > 1 {
			rec = mergeGroup(key, group)
		} else {
			rec = latestOf(key, group)
		}
		cat.Records[key] = rec
	}

	// Totality: every roster account appears, data or not.
	for _, entry := range cat.Roster {
		if hasRecordFor(cat.Records, entry.Name) {
			continue
		}
		cat.Records[entry.Name] = &model.AccountRecord{
			Account:   entry.Name,
			Canonical: entry.Name,
			Vertical:  entry.Vertical,
		}
	}

	cat.ComputeMetrics()

	zap.L().Info("aggregate: catalog built",
		zap.String("month", month.Key()),
		zap.Int("rows", len(rows)),
		zap.Int("records", len(cat.Records)),
		zap.Int("with_data", cat.Metrics.AccountsWithData),
	)
	return cat
}

// groupRows buckets rows by display key, preserving input order within each
// bucket.
func groupRows(rows []model.ReviewRow) map[string][]model.ReviewRow {
	groups := make(map[string][]model.ReviewRow)
	for _, r := range rows {
		key := r.DisplayKey()
		groups[key] = append(groups[key], r)
	}
	return groups
}

// sortGroup orders a group newest completion first. Row ID descending breaks
// timestamp ties so re-runs are stable; rows with no completion time sort
// last.
func sortGroup(group []model.ReviewRow) {
	sort.SliceStable(group, func(i, j int) bool {
		a, b := group[i].CompletionTime, group[j].CompletionTime
		switch {
		case a == nil && b == nil:
			return group[i].ID > group[j].ID
		case a == nil:
			return false
		case b == nil:
			return true
		case a.Equal(*b):
			return group[i].ID > group[j].ID
		default:
			return a.After(*b)
		}
	})
}

// latestOf builds a record from the authoritative (latest-completed) row of a
// group.
func latestOf(key string, group []model.ReviewRow) *model.AccountRecord {
	latest := group[0]

	summary := latest.Summary
	if score.HasSiteBreakdown(latest.ScoreRaw) {
		// Display enrichment only; the parsed score is unchanged.
		summary = "**Site Scores:** " + latest.ScoreRaw + "\n\n---\n\n" + summary
	}

	return &model.AccountRecord{
		Account:        key,
		Canonical:      latest.Account,
		Vertical:       latest.Vertical,
		HasData:        true,
		Score:          latest.Score,
		ReviewDate:     latest.ReviewDate,
		CompletionTime: latest.CompletionTime,
		ResponseCount:  len(group),
		Director:       latest.Director,
		Attendees:      latest.Attendees,
		Summary:        summary,
		Feedback:       latest.Feedback,
		ActionItems:    latest.ActionItems,
		NextReview:     latest.NextReview,
		SubIdentity:    latest.SubIdentity,
		Raw:            latest.Raw,
	}
}

// mergeGroup combines all of a group's rows into one record: labeled sections
// ordered newest first and the mean of all present scores.
func mergeGroup(key string, group []model.ReviewRow) *model.AccountRecord {
	var (
		summary  strings.Builder
		feedback strings.Builder
		actions  strings.Builder
		scoreSum float64
		scoreN   int
	)

	fmt.Fprintf(&summary, "**%d Reviews Combined:**\n\n", len(group))
	fmt.Fprintf(&feedback, "**Feedback from %d Reviews:**\n\n", len(group))
	fmt.Fprintf(&actions, "**Action Items from %d Reviews:**\n\n", len(group))

	for i, row := range group {
		if row.Score != nil {
			scoreSum += *row.Score
			scoreN++
		}

		fmt.Fprintf(&summary, "**%d. %s** (%s) - %s\n\n%s\n\n---\n\n",
			i+1, orNA(row.RawAccount), formatDate(row.ReviewDate), formatScore(row.Score), orNA(row.Summary))
		fmt.Fprintf(&feedback, "**%s:**\n%s\n\n---\n\n", orNA(row.RawAccount), orNA(row.Feedback))
		fmt.Fprintf(&actions, "**%s:**\n%s\n\n---\n\n", orNA(row.RawAccount), orNA(row.ActionItems))
	}

	rec := &model.AccountRecord{
		Account:        key,
		Canonical:      group[0].Account,
		Vertical:       group[0].Vertical,
		HasData:        true,
		ReviewDate:     maxReviewDate(group),
		CompletionTime: group[0].CompletionTime,
		ResponseCount:  len(group),
		Director:       group[0].Director,
		Attendees:      group[0].Attendees,
		Summary:        strings.TrimSuffix(summary.String(), "\n\n---\n\n"),
		Feedback:       strings.TrimSuffix(feedback.String(), "\n\n---\n\n"),
		ActionItems:    strings.TrimSuffix(actions.String(), "\n\n---\n\n"),
		NextReview:     group[0].NextReview,
		SubIdentity:    group[0].SubIdentity,
		Raw:            group[0].Raw,
	}
	if scoreN > 0 {
		avg := scoreSum / float64(scoreN)
		rec.Score = &avg
	}
	return rec
}

// hasRecordFor reports whether any existing record resolves to the given
// canonical account (directly or through a sub-identity key).
func hasRecordFor(records map[string]*model.AccountRecord, canonical string) bool {
	for _, rec := range records {
		if rec.Canonical == canonical {
			return true
		}
	}
	return false
}

func maxReviewDate(group []model.ReviewRow) *time.Time {
	var latest *time.Time
	for _, row := range group {
		if row.ReviewDate == nil {
			continue
		}
		if latest == nil || row.ReviewDate.After(*latest) {
			latest = row.ReviewDate
		}
	}
	return latest
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("01/02/2006")
}

func formatScore(s *float64) string {
	if s == nil {
		return "Score: N/A"
	}
	return fmt.Sprintf("Score: %.2f", *s)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
