package loader

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sbm-group/scorecard-cli/internal/sanitize"
)

// Table is one parsed export: a header row and data rows, all text sanitized.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadFile loads and parses a scorecard CSV: charset-fallback decode, CSV
// parse tolerant of ragged rows, and punctuation sanitization on every field.
func ReadFile(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "loader: read %s", path)
	}

	text, err := decode(raw)
	if err != nil {
		return nil, eris.Wrapf(err, "loader: decode %s", path)
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1 // hand-edited exports have ragged rows
	reader.LazyQuotes = true

	var table Table
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrapf(err, "loader: parse %s", path)
		}
		record = sanitize.CleanRow(record)
		if table.Header == nil {
			table.Header = record
			continue
		}
		table.Rows = append(table.Rows, record)
	}

	zap.L().Debug("loader: file parsed",
		zap.String("path", path),
		zap.Int("rows", len(table.Rows)),
	)
	return &table, nil
}
