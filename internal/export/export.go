// Package export writes an aggregated catalog as a flat review table, for
// sharing outside the dashboard.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sbm-group/scorecard-cli/internal/model"
)

// exportColumns defines the ordered output columns.
var exportColumns = []string{
	"Account",
	"Vertical",
	"Has Data",
	"Score",
	"Review Date",
	"Completion Time",
	"Responses",
	"Account Director",
	"Attendees",
	"Summary",
	"Customer Feedback",
	"Action Items",
	"Next Review",
}

// WriteCSV writes the catalog's records as a CSV file, roster order first and
// discovered accounts after.
func WriteCSV(cat *model.Catalog, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return eris.Wrap(err, "export: create file")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(exportColumns); err != nil {
		return eris.Wrap(err, "export: write header")
	}

	for _, rec := range orderedRecords(cat) {
		if err := w.Write(buildRow(rec)); err != nil {
			return eris.Wrap(err, "export: write row")
		}
	}

	return nil
}

// WriteXLSX writes the catalog's records as a single-sheet XLSX workbook.
func WriteXLSX(cat *model.Catalog, outputPath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(cat.Month.Display())
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, col := range exportColumns {
		header.AddCell().Value = col
	}

	for _, rec := range orderedRecords(cat) {
		row := sheet.AddRow()
		for _, cell := range buildRow(rec) {
			row.AddCell().Value = cell
		}
	}

	if err := file.Save(outputPath); err != nil {
		return eris.Wrap(err, "export: save workbook")
	}
	return nil
}

// orderedRecords returns records in roster order, then discovered accounts
// sorted by display key.
func orderedRecords(cat *model.Catalog) []*model.AccountRecord {
	out := make([]*model.AccountRecord, 0, len(cat.Records))
	emitted := make(map[string]bool, len(cat.Records))

	for _, entry := range cat.Roster {
		keys := make([]string, 0, 2)
		for key, rec := range cat.Records {
			if rec.Canonical == entry.Name {
				keys = append(keys, key)
			}
		}
		sort.Strings(keys)
		for _, key := range keys {
			out = append(out, cat.Records[key])
			emitted[key] = true
		}
	}

	var extra []string
	for key := range cat.Records {
		if !emitted[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		out = append(out, cat.Records[key])
	}

	return out
}

// buildRow maps an AccountRecord to an output row.
func buildRow(rec *model.AccountRecord) []string {
	return []string{
		rec.Account,
		string(rec.Vertical),
		fmt.Sprintf("%t", rec.HasData),
		formatScore(rec.Score),
		formatTime(rec.ReviewDate, "01/02/2006"),
		formatTime(rec.CompletionTime, "01/02/2006 15:04"),
		fmt.Sprintf("%d", rec.ResponseCount),
		rec.Director,
		rec.Attendees,
		rec.Summary,
		rec.Feedback,
		rec.ActionItems,
		rec.NextReview,
	}
}

func formatScore(s *float64) string {
	if s == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *s)
}

func formatTime(t *time.Time, layout string) string {
	if t == nil {
		return ""
	}
	return t.Format(layout)
}
