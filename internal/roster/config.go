package roster

import (
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sbm-group/scorecard-cli/internal/model"
)

// rosterFile is the on-disk YAML shape. A variant mapping to null marks the
// label as excluded, mirroring how operators think about it ("this one is
// nothing").
type rosterFile struct {
	Accounts []struct {
		Name     string `yaml:"name"`
		Vertical string `yaml:"vertical"`
	} `yaml:"accounts"`
	Variants map[string]*string `yaml:"variants"`
}

// LoadFile reads a roster definition from a YAML file. Accounts replace the
// built-in roster when present; variants overlay the built-in variant table.
// An empty path returns the built-in defaults.
func LoadFile(path string) (*Roster, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "roster: read %s", path)
	}

	var f rosterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrapf(err, "roster: parse %s", path)
	}

	entries := defaultEntries
	if len(f.Accounts) > 0 {
		entries = make([]model.RosterEntry, 0, len(f.Accounts))
		for _, a := range f.Accounts {
			v := model.Vertical(a.Vertical)
			if v == "" {
				v = model.VerticalOther
			}
			entries = append(entries, model.RosterEntry{Name: a.Name, Vertical: v})
		}
	}

	variants := make(map[string]Variant, len(defaultVariants)+len(f.Variants))
	for k, v := range defaultVariants {
		variants[k] = v
	}
	for k, v := range f.Variants {
		if v == nil {
			variants[k] = Variant{Exclude: true}
			continue
		}
		variants[k] = Variant{Canonical: *v}
	}

	r, err := New(entries, variants)
	if err != nil {
		return nil, err
	}

	zap.L().Info("roster: loaded",
		zap.String("path", path),
		zap.Int("accounts", len(entries)),
		zap.Int("variants", len(variants)),
	)
	return r, nil
}
