package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sbm-group/scorecard-cli/internal/export"
	"github.com/sbm-group/scorecard-cli/internal/model"
)

var (
	exportMonth  string
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export one month's account records to CSV or XLSX",
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, err := newPipeline()
		if err != nil {
			return err
		}

		month, err := model.ParseMonthKey(exportMonth)
		if err != nil {
			return err
		}

		cat, err := p.Load(month)
		if err != nil {
			return eris.Wrap(err, "export: load month")
		}

		switch exportFormat {
		case "csv":
			err = export.WriteCSV(cat, exportOut)
		case "xlsx":
			err = export.WriteXLSX(cat, exportOut)
		default:
			return eris.Errorf("unsupported format %q (use csv or xlsx)", exportFormat)
		}
		if err != nil {
			return err
		}

		zap.L().Info("export complete",
			zap.String("month", month.Key()),
			zap.String("format", exportFormat),
			zap.String("out", exportOut),
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportMonth, "month", "", "month key, e.g. December_2025 (required)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "output format: csv or xlsx")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file path (required)")
	_ = exportCmd.MarkFlagRequired("month")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}
