package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sbm-group/scorecard-cli/internal/model"
)

var (
	loadMonth string
	loadJSON  bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Run the pipeline for one month and print the catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, err := newPipeline()
		if err != nil {
			return err
		}

		var month model.Month
		if loadMonth != "" {
			month, err = model.ParseMonthKey(loadMonth)
			if err != nil {
				return err
			}
		} else {
			var ok bool
			month, ok = p.DefaultMonth()
			if !ok {
				return eris.New("no scorecard files found; use --month to pick one explicitly")
			}
		}

		cat, err := p.Load(month)
		if err != nil {
			return eris.Wrap(err, "load month")
		}

		if loadJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(cat)
		}

		printCatalog(cat)

		zap.L().Info("load complete",
			zap.String("month", month.Key()),
			zap.Bool("has_file", cat.HasFile),
			zap.Int("with_data", cat.Metrics.AccountsWithData),
		)
		return nil
	},
}

// printCatalog writes a human-readable summary table to stdout.
func printCatalog(cat *model.Catalog) {
	fmt.Printf("%s\n\n", cat.Month.Display())
	if !cat.HasFile {
		fmt.Println("No data file for this month; all accounts show as not collected.")
		return
	}

	fmt.Printf("Accounts with data: %d\n", cat.Metrics.AccountsWithData)
	if cat.Metrics.AverageScore != nil {
		fmt.Printf("Average score:      %.2f\n", *cat.Metrics.AverageScore)
	}
	fmt.Printf("Total responses:    %d\n\n", cat.Metrics.TotalResponses)

	for _, entry := range cat.Roster {
		for key, rec := range cat.Records {
			if rec.Canonical != entry.Name {
				continue
			}
			if !rec.HasData {
				fmt.Printf("  %-45s %-24s no data\n", key, rec.Vertical)
				continue
			}
			score := "N/A"
			if rec.Score != nil {
				score = fmt.Sprintf("%.2f", *rec.Score)
			}
			fmt.Printf("  %-45s %-24s %s (%d responses)\n", key, rec.Vertical, score, rec.ResponseCount)
		}
	}
}

func init() {
	loadCmd.Flags().StringVar(&loadMonth, "month", "", "month key, e.g. December_2025 (default: most recent with data)")
	loadCmd.Flags().BoolVar(&loadJSON, "json", false, "print the full catalog as JSON")
	rootCmd.AddCommand(loadCmd)
}
