// Package roster owns the canonical account ground truth: the ordered roster
// of named accounts with their vertical assignments, and the variant table
// that maps hand-entered labels back onto canonical names.
package roster

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sbm-group/scorecard-cli/internal/model"
)

// Variant is one entry in the account name variant table: either an alias for
// a canonical account, or an instruction to drop the row entirely.
type Variant struct {
	Canonical string
	Exclude   bool
}

// Roster is the static account catalog for one deployment. Built once at
// process start and never mutated afterwards.
type Roster struct {
	entries  []model.RosterEntry
	byName   map[string]model.Vertical
	byFold   map[string]string // lower-cased name -> canonical casing
	variants map[string]Variant
}

// New builds a Roster from ordered entries and a variant table. It rejects
// rosters where two entries differ only in case, since the case-insensitive
// resolution step would have no defined winner.
func New(entries []model.RosterEntry, variants map[string]Variant) (*Roster, error) {
	r := &Roster{
		entries:  entries,
		byName:   make(map[string]model.Vertical, len(entries)),
		byFold:   make(map[string]string, len(entries)),
		variants: variants,
	}
	if r.variants == nil {
		r.variants = map[string]Variant{}
	}
	for _, e := range entries {
		if _, dup := r.byName[e.Name]; dup {
			return nil, eris.Errorf("roster: duplicate account %q", e.Name)
		}
		fold := strings.ToLower(e.Name)
		if prev, dup := r.byFold[fold]; dup {
			return nil, eris.Errorf("roster: accounts %q and %q differ only in case", prev, e.Name)
		}
		r.byName[e.Name] = e.Vertical
		r.byFold[fold] = e.Name
	}
	return r, nil
}

// Resolve maps a raw account label to a canonical account name. The second
// return value is false when the row must be dropped: blank input, or a label
// the variant table marks as excluded.
//
// Resolution order: variant table exact match, roster exact match, roster
// case-insensitive match, then the trimmed input unchanged (such accounts land
// in the "Other" vertical rather than being dropped).
func (r *Roster) Resolve(raw string) (string, bool) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", false
	}

	if v, ok := r.variants[name]; ok {
		if v.Exclude {
			return "", false
		}
		return v.Canonical, true
	}

	if _, ok := r.byName[name]; ok {
		return name, true
	}

	if canonical, ok := r.byFold[strings.ToLower(name)]; ok {
		return canonical, true
	}

	return name, true
}

// Vertical returns the vertical assigned to a canonical account, or
// VerticalOther when the account is not on the roster.
func (r *Roster) Vertical(name string) model.Vertical {
	if v, ok := r.byName[name]; ok {
		return v
	}
	return model.VerticalOther
}

// Contains reports whether name is on the fixed roster.
func (r *Roster) Contains(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Entries returns the roster in its configured order.
func (r *Roster) Entries() []model.RosterEntry {
	return r.entries
}

// Len returns the number of roster accounts.
func (r *Roster) Len() int {
	return len(r.entries)
}
