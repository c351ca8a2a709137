package roster

import "github.com/sbm-group/scorecard-cli/internal/model"

// defaultEntries is the built-in account roster with vertical assignments.
// A YAML roster file, when configured, replaces this list entirely.
var defaultEntries = []model.RosterEntry{
	// Aviation
	{Name: "Delta Air Lines", Vertical: model.VerticalAviation},

	// Automotive
	{Name: "Ford Motor Company", Vertical: model.VerticalAutomotive},
	{Name: "General Motors", Vertical: model.VerticalAutomotive},
	{Name: "Tesla Inc.", Vertical: model.VerticalAutomotive},
	{Name: "Honda Motor Company", Vertical: model.VerticalAutomotive},
	{Name: "Detroit Diesel (DDC)", Vertical: model.VerticalAutomotive},

	// Manufacturing
	{Name: "Lockheed Martin", Vertical: model.VerticalManufacturing},
	{Name: "Boeing Company", Vertical: model.VerticalManufacturing},
	{Name: "Northrop Grumman", Vertical: model.VerticalManufacturing},
	{Name: "Hewlett-Packard", Vertical: model.VerticalManufacturing},
	{Name: "Textron Aviation", Vertical: model.VerticalManufacturing},
	{Name: "Spirit Aerosystems", Vertical: model.VerticalManufacturing},
	{Name: "United Technologies", Vertical: model.VerticalManufacturing},
	{Name: "Mars", Vertical: model.VerticalManufacturing},
	{Name: "Ball Corp", Vertical: model.VerticalManufacturing},
	{Name: "Procter & Gamble Company", Vertical: model.VerticalManufacturing},
	{Name: "GE Healthcare", Vertical: model.VerticalManufacturing},
	{Name: "General Electric", Vertical: model.VerticalManufacturing},
	{Name: "General Dynamics", Vertical: model.VerticalManufacturing},
	{Name: "Nestle", Vertical: model.VerticalManufacturing},
	{Name: "Westinghouse", Vertical: model.VerticalManufacturing},
	{Name: "Micron Tech", Vertical: model.VerticalManufacturing},

	// Technology
	{Name: "Microsoft", Vertical: model.VerticalTechnology},
	{Name: "Meta", Vertical: model.VerticalTechnology},
	{Name: "Intel", Vertical: model.VerticalTechnology},
	{Name: "Amazon", Vertical: model.VerticalTechnology},
	{Name: "Amazon Office", Vertical: model.VerticalTechnology},
	{Name: "Google", Vertical: model.VerticalTechnology},
	{Name: "NVIDIA", Vertical: model.VerticalTechnology},
	{Name: "Adobe Systems", Vertical: model.VerticalTechnology},
	{Name: "LinkedIn", Vertical: model.VerticalTechnology},
	{Name: "LAM Research", Vertical: model.VerticalTechnology},
	{Name: "IBM", Vertical: model.VerticalTechnology},
	{Name: "Uber", Vertical: model.VerticalTechnology},

	// Life Science
	{Name: "Merck", Vertical: model.VerticalLifeScience},
	{Name: "Abbott Labs", Vertical: model.VerticalLifeScience},
	{Name: "Amgen", Vertical: model.VerticalLifeScience},
	{Name: "Eli Lilly", Vertical: model.VerticalLifeScience},
	{Name: "Sanofi", Vertical: model.VerticalLifeScience},
	{Name: "Gilead Sciences", Vertical: model.VerticalLifeScience},
	{Name: "Takeda Pharmaceutical", Vertical: model.VerticalLifeScience},
	{Name: "Lonza Biologics", Vertical: model.VerticalLifeScience},
	{Name: "Bristol Myers Squibb", Vertical: model.VerticalLifeScience},
	{Name: "Bayer", Vertical: model.VerticalLifeScience},
	{Name: "Medtronic", Vertical: model.VerticalLifeScience},
	{Name: "Biogen", Vertical: model.VerticalLifeScience},
	{Name: "Boehringer Ingelheim", Vertical: model.VerticalLifeScience},
	{Name: "Novartis", Vertical: model.VerticalLifeScience},
	{Name: "Johnson & Johnson", Vertical: model.VerticalLifeScience},
	{Name: "Johnson & Johnson - Puerto Rico", Vertical: model.VerticalLifeScience},
	{Name: "AbbVie", Vertical: model.VerticalLifeScience},

	// Finance
	{Name: "Wells Fargo", Vertical: model.VerticalFinance},
	{Name: "Charles Schwab", Vertical: model.VerticalFinance},
	{Name: "Deutsche Bank", Vertical: model.VerticalFinance},
	{Name: "CIGNA", Vertical: model.VerticalFinance},
	{Name: "USAA", Vertical: model.VerticalFinance},

	// Distribution
	{Name: "Nike", Vertical: model.VerticalDistribution},

	// R&D / Education / Other
	{Name: "Great American Ball Park", Vertical: model.VerticalRDEducation},
}

// defaultVariants maps observed raw labels (typos, site suffixes, managed-by
// decorations) to canonical roster names. Exclude entries drop the row: known
// bad or duplicate data entry.
var defaultVariants = map[string]Variant{
	"Abbvie":       {Canonical: "AbbVie"},
	"Abbott":       {Canonical: "Abbott Labs"},
	"Abbottt":      {Canonical: "Abbott Labs"}, // recurring typo in the export
	"Merck Sodexo": {Canonical: "Merck"},
	"Cigna":        {Canonical: "CIGNA"},
	"GM Milford":   {Canonical: "General Motors"},
	"Micron (C&W)": {Canonical: "Micron Tech"},
	"Lam Research": {Canonical: "LAM Research"},
	"P&G":          {Canonical: "Procter & Gamble Company"},
	"P&G(JLL)":     {Canonical: "Procter & Gamble Company"},
	"Boeing":       {Canonical: "Boeing Company"},

	"Great American Ballpark": {Canonical: "Great American Ball Park"},
	"Microsoft Puget Sound":   {Canonical: "Microsoft"},
	"JLL Northrop Grumman":    {Canonical: "Northrop Grumman"},
	"Wells Fargo-JLL":         {Canonical: "Wells Fargo"},
	"Johnson & Johnson JLL":   {Canonical: "Johnson & Johnson"},

	// Data entry error: an account director's name in the account field.
	"Grant frazier": {Canonical: "Meta"},

	// Not an account we track.
	"Omnicom": {Exclude: true},

	// Per-site Nike submissions all roll up to the single Nike account.
	"Nike/DHL":                    {Canonical: "Nike"},
	"Nike/GXO Relay":              {Canonical: "Nike"},
	"Nike/GXO Relay (California)": {Canonical: "Nike"},
	"Nike/GXO Connect":            {Canonical: "Nike"},
	"Nike/GXO  Connect":           {Canonical: "Nike"}, // double space as typed
	"Nike/NALC":                   {Canonical: "Nike"},
	"Nike/Adapt":                  {Canonical: "Nike"},
}

// Default returns the built-in roster.
func Default() *Roster {
	r, err := New(defaultEntries, defaultVariants)
	if err != nil {
		// The built-in tables are compile-time constants; a collision here is
		// a programming error.
		panic(err)
	}
	return r
}
