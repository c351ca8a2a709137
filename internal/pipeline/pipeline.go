// Package pipeline orchestrates one scorecard load cycle: file resolution,
// decode, sanitize, reconcile, resolve, parse, aggregate. The whole run is a
// pure function of (input file, month, roster, cohort rules); a short TTL
// cache in front only avoids re-reading the file on repeated requests.
package pipeline

import (
	"time"

	"go.uber.org/zap"

	"github.com/sbm-group/scorecard-cli/internal/aggregate"
	"github.com/sbm-group/scorecard-cli/internal/loader"
	"github.com/sbm-group/scorecard-cli/internal/model"
	"github.com/sbm-group/scorecard-cli/internal/roster"
	"github.com/sbm-group/scorecard-cli/internal/schema"
)

// Pipeline computes account catalogs from monthly CSV exports.
type Pipeline struct {
	dir    string
	roster *roster.Roster
	rules  *schema.Rules
	cache  *catalogCache
}

// Options configures a Pipeline.
type Options struct {
	Dir       string // scorecards directory
	Roster    *roster.Roster
	Rules     *schema.Rules
	CacheTTL  time.Duration // 0 disables caching
	CacheSize int
}

// New creates a Pipeline. Roster and rules fall back to the built-in defaults
// when nil.
func New(opts Options) *Pipeline {
	if opts.Roster == nil {
		opts.Roster = roster.Default()
	}
	if opts.Rules == nil {
		opts.Rules = schema.DefaultRules()
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = 16
	}

	p := &Pipeline{
		dir:    opts.Dir,
		roster: opts.Roster,
		rules:  opts.Rules,
	}
	if opts.CacheTTL > 0 {
		p.cache = newCatalogCache(opts.CacheSize, opts.CacheTTL)
	}
	return p
}

// Months lists months with an existing data file, newest first.
func (p *Pipeline) Months() []model.Month {
	return loader.Discover(p.dir, p.rules)
}

// DefaultMonth returns the most recent month with data. The boolean is false
// when no data files exist at all.
func (p *Pipeline) DefaultMonth() (model.Month, bool) {
	months := p.Months()
	if len(months) == 0 {
		return model.Month{}, false
	}
	return months[0], true
}

// Load returns the account catalog for a month, from cache when fresh.
// A missing input file is not an error: the catalog comes back with
// HasFile=false and every roster account marked "no data". A file that cannot
// be decoded is terminal for the load (loader.ErrUndecodable).
func (p *Pipeline) Load(month model.Month) (*model.Catalog, error) {
	if p.cache != nil {
		if v := p.cache.get(month.Key()); v != nil {
			return v.(*model.Catalog), nil
		}
	}

	cat, err := p.process(month)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		p.cache.put(month.Key(), cat)
	}
	return cat, nil
}

// CacheStats exposes cache counters for the status endpoint. Zero-valued when
// caching is disabled.
func (p *Pipeline) CacheStats() CacheStats {
	if p.cache == nil {
		return CacheStats{}
	}
	return p.cache.stats()
}

// process runs one full uncached load cycle.
func (p *Pipeline) process(month model.Month) (*model.Catalog, error) {
	start := time.Now()
	rule := p.rules.ForMonth(month.Key())

	path, ok := loader.Resolve(p.dir, month, rule)
	if !ok {
		zap.L().Info("pipeline: no data file for month",
			zap.String("month", month.Key()),
		)
		return aggregate.Build(month, false, nil, p.roster, p.rules), nil
	}

	table, err := loader.ReadFile(path)
	if err != nil {
		return nil, err
	}

	rows := buildRows(table, rule, p.roster)
	cat := aggregate.Build(month, true, rows, p.roster, p.rules)

	zap.L().Info("pipeline: load complete",
		zap.String("month", month.Key()),
		zap.String("file", path),
		zap.Int("rows", len(rows)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return cat, nil
}
