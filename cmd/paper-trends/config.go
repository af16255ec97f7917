// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-trends/pkg/types"
)

// flagKeys maps command flags to configuration keys. A flag set on the
// command line overrides the config file and PAPER_TRENDS_* variables.
var flagKeys = map[string]string{
	"unknown-label":   "normalize.unknown_label",
	"preprint-marker": "normalize.preprint_marker",
	"snapshot":        "snapshot.path",
	"snapshot-format": "snapshot.format",
	"from-year":       "aggregate.from_year",
	"to-year":         "aggregate.to_year",
	"parallel":        "aggregate.parallel",
	"top":             "aggregate.top_categories",
	"top-ngrams":      "aggregate.top_ngrams",
	"rolling-window":  "aggregate.rolling_window",
	"format":          "export.format",
	"output-dir":      "export.output_dir",
}

// loadConfig binds the flags cmd defines and returns the merged pipeline
// configuration with defaults applied.
func loadConfig(cmd *cobra.Command) (types.PipelineConfig, error) {
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return types.PipelineConfig{}, fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}

	var cfg types.PipelineConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.PipelineConfig{}, fmt.Errorf("reading configuration: %w", err)
	}
	cfg = cfg.WithDefaults()

	if cfg.Aggregate.FromYear != 0 && cfg.Aggregate.ToYear != 0 && cfg.Aggregate.FromYear > cfg.Aggregate.ToYear {
		return types.PipelineConfig{}, fmt.Errorf("--from-year %d is after --to-year %d", cfg.Aggregate.FromYear, cfg.Aggregate.ToYear)
	}
	return cfg, nil
}

func addNormalizeFlags(cmd *cobra.Command) {
	cmd.Flags().String("unknown-label", "", `label for missing journal and source_x values (default "Unknown")`)
	cmd.Flags().String("preprint-marker", "", `source_x substring marking a preprint (default "preprint")`)
}

func addSnapshotFlags(cmd *cobra.Command) {
	cmd.Flags().String("snapshot", "", "cleaned snapshot path (default metadata_cleaned.csv or metadata_cleaned.db)")
	cmd.Flags().String("snapshot-format", "", "cleaned snapshot format: csv or sqlite (default csv)")
}

func addAggregateFlags(cmd *cobra.Command) {
	cmd.Flags().Int("from-year", 0, "first publication year to include (0 = open)")
	cmd.Flags().Int("to-year", 0, "last publication year to include (0 = open)")
	cmd.Flags().Bool("parallel", false, "compute independent aggregates concurrently")
	cmd.Flags().Int("top", 0, "number of journals and sources to rank (default 20)")
	cmd.Flags().Int("top-ngrams", 0, "number of unigrams and bigrams to keep (default 50)")
	cmd.Flags().Int("rolling-window", 0, "months in the rolling average (default 3)")
	cmd.Flags().String("format", "", "report format: yaml, json, or csv (default yaml)")
	cmd.Flags().String("output-dir", "", `report directory (default "outputs")`)
	cmd.Flags().Int("show", 10, "rows per ranking in the terminal summary")
}
