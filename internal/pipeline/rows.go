package pipeline

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sbm-group/scorecard-cli/internal/loader"
	"github.com/sbm-group/scorecard-cli/internal/model"
	"github.com/sbm-group/scorecard-cli/internal/roster"
	"github.com/sbm-group/scorecard-cli/internal/schema"
	"github.com/sbm-group/scorecard-cli/internal/score"
)

// timestampLayouts are tried in order for the free-text date fields. Forms
// exports are inconsistent even within one file.
var timestampLayouts = []string{
	"1/2/06 15:04:05",
	"1/2/06 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006 3:04 PM",
	"1/2/2006 3:04:05 PM",
	"1/2/2006",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
}

// buildRows turns a parsed table into resolved review rows: schema
// reconciliation, account resolution, score and date parsing, and
// sub-identity derivation. Rows that resolve to the exclusion sentinel, or
// fall below the cohort's row-ID cutoff, are dropped here.
func buildRows(table *loader.Table, rule schema.CohortRule, ros *roster.Roster) []model.ReviewRow {
	rc := schema.NewReconciler(table.Header, rule)

	rows := make([]model.ReviewRow, 0, len(table.Rows))
	var dropped int
	for _, raw := range table.Rows {
		id := parseRowID(rc.Value(raw, schema.FieldID))
		if rule.MinRowID > 0 && id < rule.MinRowID {
			dropped++
			continue
		}

		rawAccount := rc.Value(raw, schema.FieldAccount)
		canonical, ok := ros.Resolve(rawAccount)
		if !ok {
			dropped++
			continue
		}

		row := model.ReviewRow{
			ID:          id,
			Account:     canonical,
			RawAccount:  strings.TrimSpace(rawAccount),
			Vertical:    ros.Vertical(canonical),
			Director:    strings.TrimSpace(rc.Value(raw, schema.FieldDirector)),
			Attendees:   strings.TrimSpace(rc.Value(raw, schema.FieldAttendees)),
			Summary:     strings.TrimSpace(rc.Value(raw, schema.FieldSummary)),
			Feedback:    strings.TrimSpace(rc.Value(raw, schema.FieldFeedback)),
			ActionItems: strings.TrimSpace(rc.Value(raw, schema.FieldActionItems)),
			NextReview:  strings.TrimSpace(rc.Value(raw, schema.FieldNextReview)),
			ScoreRaw:    strings.TrimSpace(rc.Value(raw, schema.FieldScore)),
			Raw:         rawFields(table.Header, raw),
		}

		if rule.SubIdentity {
			row.SubIdentity = cleanSubIdentity(rc.Value(raw, schema.FieldSubIdentity))
		}

		if v, ok := score.Parse(row.ScoreRaw); ok {
			row.Score = &v
		}
		row.ReviewDate = parseTimestamp(rc.Value(raw, schema.FieldReviewDate))
		row.CompletionTime = parseTimestamp(rc.Value(raw, schema.FieldCompletion))

		rows = append(rows, row)
	}

	if dropped > 0 {
		zap.L().Debug("pipeline: rows dropped",
			zap.Int("dropped", dropped),
			zap.Int("kept", len(rows)),
		)
	}
	return rows
}

// parseRowID parses the numeric row identifier, 0 when absent or non-numeric.
func parseRowID(s string) int {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return id
}

// cleanSubIdentity normalizes the facility-manager designation. The form
// writes "(None)" for the empty choice.
func cleanSubIdentity(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "(None)", ""))
	return s
}

// parseTimestamp parses a free-text date field. Unparseable input yields nil:
// the row is still included, only the field is absent.
func parseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// rawFields preserves the populated source cells for the detail view.
func rawFields(header []string, row []string) map[string]string {
	raw := make(map[string]string, len(row))
	for i, cell := range row {
		if i >= len(header) {
			break
		}
		if strings.TrimSpace(cell) == "" {
			continue
		}
		raw[header[i]] = cell
	}
	return raw
}
