// Package schema reconciles the two column layouts the scorecard survey has
// used over its lifetime. When the form was restructured mid-series, each
// question gained a duplicate "continuation" column; a given row populates one
// set or the other, and occasionally a mix. Every logical field the pipeline
// consumes is declared here with its physical column pair, so layout detection
// happens in exactly one place.
package schema

import "strings"

// Field names a logical survey field independent of physical column layout.
type Field string

const (
	FieldAccount     Field = "account"
	FieldScore       Field = "score"
	FieldReviewDate  Field = "review_date"
	FieldAttendees   Field = "attendees"
	FieldSummary     Field = "summary"
	FieldFeedback    Field = "feedback"
	FieldActionItems Field = "action_items"
	FieldNextReview  Field = "next_review"

	// Single-column fields: present only in the primary position regardless
	// of which layout the row follows.
	FieldID          Field = "id"
	FieldCompletion  Field = "completion_time"
	FieldDirector    Field = "director"
	FieldSubIdentity Field = "sub_identity"
)

// columnPair declares the physical column names backing a logical field. An
// empty Continuation means the field never got a duplicate column.
type columnPair struct {
	Primary      string
	Continuation string
}

// The survey exports verbatim question text as column headers, embedded
// newlines included. Continuation columns carry a "1" suffix.
var columns = map[Field]columnPair{
	FieldAccount: {
		Primary:      "Name of Account/Portfolio",
		Continuation: "Name of Account/Portfolio1",
	},
	FieldScore: {
		Primary:      "What was the overall Scorecard Score?",
		Continuation: "What was the overall Scorecard Score?1",
	},
	FieldReviewDate: {
		Primary:      "Date/Time of Scorecard Review?",
		Continuation: "Date/Time of Scorecard Review?1",
	},
	FieldAttendees: {
		Primary:      "Who attended your Scorecard Review?\nNames and titles of all external and internal attendees.",
		Continuation: "Who attended your Scorecard Review?\nNames and titles of all external and internal attendees.1",
	},
	FieldSummary: {
		Primary:      "Summary of Review\nWhat did you cover during the review? Please provide a brief summary of what was covered.\n\n",
		Continuation: "Summary of Review\nWhat did you cover during the review? Please provide a brief summary of what was covered.\n\n1",
	},
	FieldFeedback: {
		Primary:      "Customer Feedback\n\nWhat was the feedback from the client -- include any concerns and compliments shared and who shared it.\n",
		Continuation: "Customer Feedback\n\nWhat was the feedback from the client -- include any concerns and compliments shared and who shared it.\n1",
	},
	FieldActionItems: {
		Primary:      "Action Items/Follow Ups\n\nWhat action items/follow ups came out of the meeting? Who owns them and agreed upon timelines?\n",
		Continuation: "Action Items/Follow Ups\n\nWhat action items/follow ups came out of the meeting? Who owns them and agreed upon timelines?\n1",
	},
	FieldNextReview: {
		Primary:      "Date of Next Scorecard Review",
		Continuation: "Date of Next Scorecard Review1",
	},

	FieldID:          {Primary: "Id"},
	FieldCompletion:  {Primary: "Completion time"},
	FieldDirector:    {Primary: "Please Enter Your Name"},
	FieldSubIdentity: {Primary: "Who is Your FM"},
}

// Reconciler resolves logical fields against one export's header row. Build
// one per loaded file.
type Reconciler struct {
	index map[string]int
	rule  CohortRule
}

// NewReconciler indexes the header row for field lookups under the given
// cohort rule.
func NewReconciler(header []string, rule CohortRule) *Reconciler {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	return &Reconciler{index: idx, rule: rule}
}

// Value returns the unified value of a logical field for one data row.
//
// When the cohort forces the continuation layout, the continuation column is
// used unconditionally. Otherwise the continuation column wins if it holds a
// non-blank value, falling back to the primary column. The decision is made
// per field, not per row: a row may source its account from the continuation
// column and its score from the primary one.
func (rc *Reconciler) Value(row []string, f Field) string {
	pair, ok := columns[f]
	if !ok {
		return ""
	}

	if rc.rule.ForceContinuation && pair.Continuation != "" {
		return rc.cell(row, pair.Continuation)
	}

	if pair.Continuation != "" {
		if v := rc.cell(row, pair.Continuation); strings.TrimSpace(v) != "" {
			return v
		}
	}
	return rc.cell(row, pair.Primary)
}

// cell fetches a raw cell by column name, tolerating short rows.
func (rc *Reconciler) cell(row []string, column string) string {
	i, ok := rc.index[column]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
