// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-trends/internal/lexical"
	"github.com/pdiddy/paper-trends/internal/report"
	"github.com/pdiddy/paper-trends/internal/snapshot"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Clean, snapshot, and analyze a raw metadata CSV in one pass",
	Long: `Run performs clean followed by analyze without re-reading the
snapshot. The snapshot and the report share one run ID.`,
	RunE: runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	input, _ := cmd.Flags().GetString("input")
	show, _ := cmd.Flags().GetInt("show")
	out := cmd.OutOrStdout()

	cleaned, err := cleanFile(cfg, input, out)
	if err != nil {
		return err
	}

	r := lexical.Aggregate(cleaned, lexical.Options{Config: cfg.Aggregate, Logger: &logger})
	run := snapshot.Run{ID: r.RunID, CreatedAt: r.GeneratedAt, Source: input}
	if err := writeSnapshot(cmd.Context(), cfg.Snapshot, cleaned, run, out); err != nil {
		return err
	}

	report.FormatTable(r, out, show)
	fmt.Fprintln(out)
	_, err = report.Export(r, cfg.Export, out)
	return err
}

func init() {
	runCmd.Flags().String("input", "metadata.csv", "raw metadata CSV")
	addNormalizeFlags(runCmd)
	addSnapshotFlags(runCmd)
	addAggregateFlags(runCmd)

	rootCmd.AddCommand(runCmd)
}
