package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var monthsCmd = &cobra.Command{
	Use:   "months",
	Short: "List months with an existing scorecard file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, err := newPipeline()
		if err != nil {
			return err
		}

		months := p.Months()
		if len(months) == 0 {
			fmt.Println("No scorecard files found.")
			return nil
		}

		for _, m := range months {
			fmt.Printf("%-20s %s\n", m.Key(), m.Display())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(monthsCmd)
}
