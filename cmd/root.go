package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sbm-group/scorecard-cli/internal/config"
	"github.com/sbm-group/scorecard-cli/internal/pipeline"
	"github.com/sbm-group/scorecard-cli/internal/roster"
	"github.com/sbm-group/scorecard-cli/internal/schema"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "scorecard",
	Short: "Monthly scorecard review pipeline",
	Long:  "Normalizes hand-entered scorecard survey exports into one canonical record per account and serves them to the review dashboard.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// newPipeline wires a Pipeline from the loaded configuration.
func newPipeline() (*pipeline.Pipeline, error) {
	ros, err := roster.LoadFile(cfg.Scorecards.RosterFile)
	if err != nil {
		return nil, err
	}
	rules, err := schema.LoadRules(cfg.Scorecards.CohortsFile)
	if err != nil {
		return nil, err
	}

	return pipeline.New(pipeline.Options{
		Dir:       cfg.Scorecards.Dir,
		Roster:    ros,
		Rules:     rules,
		CacheTTL:  time.Duration(cfg.Cache.TTLSecs) * time.Second,
		CacheSize: cfg.Cache.MaxEntries,
	}), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
