// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute publication trends from a cleaned snapshot",
	Long: `Analyze reads a cleaned snapshot (or any metadata CSV given with
--input) and computes yearly and monthly publication counts with a rolling
average, top journals and sources, cumulative totals for the leading
journals, and the most frequent title unigrams and bigrams.

A summary is printed and the full report is written to the output
directory as YAML, JSON, or a set of CSV tables.`,
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	input, _ := cmd.Flags().GetString("input")
	show, _ := cmd.Flags().GetInt("show")

	ds, err := loadSnapshot(cmd.Context(), cfg.Snapshot, input)
	if err != nil {
		return err
	}
	_, err = analyze(cfg, ds, show, cmd.OutOrStdout())
	return err
}

func init() {
	analyzeCmd.Flags().String("input", "", "metadata CSV to analyze instead of the configured snapshot")
	addSnapshotFlags(analyzeCmd)
	addAggregateFlags(analyzeCmd)

	rootCmd.AddCommand(analyzeCmd)
}
