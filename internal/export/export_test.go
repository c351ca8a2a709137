package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sbm-group/scorecard-cli/internal/model"
)

func testCatalog(t *testing.T) *model.Catalog {
	t.Helper()
	score := 4.5
	reviewed := time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC)
	completed := time.Date(2025, 12, 4, 9, 30, 0, 0, time.UTC)

	cat := &model.Catalog{
		Month:   model.Month{Name: "December", Year: 2025},
		HasFile: true,
		Roster: []model.RosterEntry{
			{Name: "Microsoft", Vertical: model.VerticalTechnology},
			{Name: "Nike", Vertical: model.VerticalDistribution},
		},
		Records: map[string]*model.AccountRecord{
			"Microsoft": {
				Account: "Microsoft", Canonical: "Microsoft",
				Vertical: model.VerticalTechnology, HasData: true,
				Score: &score, ReviewDate: &reviewed, CompletionTime: &completed,
				ResponseCount: 1, Director: "Dana", Summary: "covered ops",
			},
			"Nike": {
				Account: "Nike", Canonical: "Nike",
				Vertical: model.VerticalDistribution,
			},
			"Acme Janitorial": {
				Account: "Acme Janitorial", Canonical: "Acme Janitorial",
				Vertical: model.VerticalOther, HasData: true, ResponseCount: 1,
			},
		},
	}
	cat.ComputeMetrics()
	return cat
}

func TestWriteCSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(testCatalog(t), out))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, exportColumns, records[0])

	// Roster order first, discovered accounts after.
	assert.Equal(t, "Microsoft", records[1][0])
	assert.Equal(t, "Nike", records[2][0])
	assert.Equal(t, "Acme Janitorial", records[3][0])

	ms := records[1]
	assert.Equal(t, "Technology", ms[1])
	assert.Equal(t, "true", ms[2])
	assert.Equal(t, "4.50", ms[3])
	assert.Equal(t, "12/03/2025", ms[4])
	assert.Equal(t, "12/04/2025 09:30", ms[5])
	assert.Equal(t, "1", ms[6])
	assert.Equal(t, "Dana", ms[7])

	nike := records[2]
	assert.Equal(t, "false", nike[2])
	assert.Equal(t, "", nike[3], "absent score exports empty")
}

func TestWriteCSV_SubIdentityRowsSortUnderRosterAccount(t *testing.T) {
	cat := testCatalog(t)
	delete(cat.Records, "Microsoft")
	cat.Records["Microsoft (North)"] = &model.AccountRecord{
		Account: "Microsoft (North)", Canonical: "Microsoft",
		Vertical: model.VerticalTechnology, HasData: true, ResponseCount: 1,
	}
	cat.Records["Microsoft (South)"] = &model.AccountRecord{
		Account: "Microsoft (South)", Canonical: "Microsoft",
		Vertical: model.VerticalTechnology, HasData: true, ResponseCount: 1,
	}

	out := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(cat, out))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, "Microsoft (North)", records[1][0])
	assert.Equal(t, "Microsoft (South)", records[2][0])
	assert.Equal(t, "Nike", records[3][0])
}

func TestWriteXLSX(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteXLSX(testCatalog(t), out))

	wb, err := xlsx.OpenFile(out)
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 1)

	sheet := wb.Sheets[0]
	assert.Equal(t, "December 2025", sheet.Name)
	require.Len(t, sheet.Rows, 4)

	assert.Equal(t, "Account", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, "Microsoft", sheet.Rows[1].Cells[0].Value)
	assert.Equal(t, "4.50", sheet.Rows[1].Cells[3].Value)
}

func TestWriteCSV_BadPath(t *testing.T) {
	err := WriteCSV(testCatalog(t), filepath.Join(t.TempDir(), "no", "such", "dir.csv"))
	require.Error(t, err)
}
