package pipeline

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbm-group/scorecard-cli/internal/model"
	"github.com/sbm-group/scorecard-cli/internal/roster"
	"github.com/sbm-group/scorecard-cli/internal/schema"
)

var exportHeader = []string{
	"Id",
	"Completion time",
	"Please Enter Your Name",
	"Who is Your FM",
	"Name of Account/Portfolio",
	"What was the overall Scorecard Score?",
	"Date/Time of Scorecard Review?",
}

func writeExport(t *testing.T, dir, name string, rows [][]string) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()

	w := csv.NewWriter(f)
	require.NoError(t, w.Write(exportHeader))
	require.NoError(t, w.WriteAll(rows))
	w.Flush()
	require.NoError(t, w.Error())
}

func testPipeline(t *testing.T, dir string, opts Options) *Pipeline {
	t.Helper()
	if opts.Roster == nil {
		r, err := roster.New([]model.RosterEntry{
			{Name: "Microsoft", Vertical: model.VerticalTechnology},
			{Name: "Nike", Vertical: model.VerticalDistribution},
		}, nil)
		require.NoError(t, err)
		opts.Roster = r
	}
	if opts.Rules == nil {
		opts.Rules = &schema.Rules{Cohorts: map[string]schema.CohortRule{}}
	}
	opts.Dir = dir
	return New(opts)
}

var january = model.Month{Name: "January", Year: 2026}

func TestLoad_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "January_2026_Scorecards.csv", [][]string{
		{"1", "1/5/2026 9:00:00 AM", "Dana", "", "microsoft", "4.68", "1/3/2026"},
		{"2", "1/6/2026 9:00:00 AM", "Sam", "", "Unknown Account", "N/A", ""},
	})

	p := testPipeline(t, dir, Options{})
	cat, err := p.Load(january)
	require.NoError(t, err)

	assert.True(t, cat.HasFile)
	require.Len(t, cat.Records, 3) // 2 roster accounts + 1 discovered

	ms := cat.Records["Microsoft"]
	require.NotNil(t, ms, "case-folded account resolves onto the roster")
	assert.True(t, ms.HasData)
	require.NotNil(t, ms.Score)
	assert.Equal(t, 4.68, *ms.Score)
	assert.Equal(t, "Dana", ms.Director)
	require.NotNil(t, ms.ReviewDate)
	assert.Equal(t, time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC), *ms.ReviewDate)

	other := cat.Records["Unknown Account"]
	require.NotNil(t, other)
	assert.Equal(t, model.VerticalOther, other.Vertical)
	assert.Nil(t, other.Score)

	nike := cat.Records["Nike"]
	require.NotNil(t, nike)
	assert.False(t, nike.HasData)
}

func TestLoad_MissingFileYieldsEmptyCatalog(t *testing.T) {
	p := testPipeline(t, t.TempDir(), Options{})

	cat, err := p.Load(january)
	require.NoError(t, err)

	assert.False(t, cat.HasFile)
	assert.Len(t, cat.Records, 2)
	for _, rec := range cat.Records {
		assert.False(t, rec.HasData)
	}
}

func TestLoad_MinRowIDFilter(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "January_2026_Scorecards.csv", [][]string{
		{"10", "1/5/2026 9:00:00 AM", "Dana", "", "Microsoft", "3.0", ""},
		{"50", "1/6/2026 9:00:00 AM", "Dana", "", "Microsoft", "4.0", ""},
	})

	rules := &schema.Rules{Cohorts: map[string]schema.CohortRule{
		"January_2026": {MinRowID: 50},
	}}
	p := testPipeline(t, dir, Options{Rules: rules})

	cat, err := p.Load(january)
	require.NoError(t, err)

	ms := cat.Records["Microsoft"]
	assert.Equal(t, 1, ms.ResponseCount)
	assert.Equal(t, 4.0, *ms.Score)
}

func TestLoad_SubIdentity(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "January_2026_Scorecards.csv", [][]string{
		{"1", "1/5/2026 9:00:00 AM", "Dana", "North", "Microsoft", "5", ""},
		{"2", "1/5/2026 10:00:00 AM", "Sam", "(None)", "Nike", "4", ""},
	})

	rules := &schema.Rules{Cohorts: map[string]schema.CohortRule{
		"January_2026": {SubIdentity: true},
	}}
	p := testPipeline(t, dir, Options{Rules: rules})

	cat, err := p.Load(january)
	require.NoError(t, err)

	require.NotNil(t, cat.Records["Microsoft (North)"])
	// "(None)" means no designation; the record keys on the bare account.
	require.NotNil(t, cat.Records["Nike"])
	assert.Empty(t, cat.Records["Nike"].SubIdentity)
}

func TestLoad_Reproducible(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "January_2026_Scorecards.csv", [][]string{
		{"1", "1/5/2026 9:00:00 AM", "Dana", "", "Microsoft", "4.68", "1/3/2026"},
		{"2", "1/5/2026 9:00:00 AM", "Sam", "", "Nike", "4.0", ""},
	})

	a, err := testPipeline(t, dir, Options{}).Load(january)
	require.NoError(t, err)
	b, err := testPipeline(t, dir, Options{}).Load(january)
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestLoad_CacheHit(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "January_2026_Scorecards.csv", [][]string{
		{"1", "1/5/2026 9:00:00 AM", "Dana", "", "Microsoft", "4.68", ""},
	})

	p := testPipeline(t, dir, Options{CacheTTL: time.Minute})

	first, err := p.Load(january)
	require.NoError(t, err)
	second, err := p.Load(january)
	require.NoError(t, err)

	assert.Same(t, first, second, "second load must come from cache")

	stats := p.CacheStats()
	assert.Equal(t, 1, stats.Entries)
	assert.EqualValues(t, 1, stats.Hits)
	assert.EqualValues(t, 1, stats.Misses)
}

func TestMonthsAndDefaultMonth(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "January_2026_Scorecards.csv", nil)
	writeExport(t, dir, "November_2025_Scorecards.csv", nil)

	p := testPipeline(t, dir, Options{})

	months := p.Months()
	require.Len(t, months, 2)
	assert.Equal(t, "January_2026", months[0].Key())

	def, ok := p.DefaultMonth()
	require.True(t, ok)
	assert.Equal(t, "January_2026", def.Key())

	empty := testPipeline(t, t.TempDir(), Options{})
	_, ok = empty.DefaultMonth()
	assert.False(t, ok)
}
