// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-trends/internal/snapshot"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Normalize a raw metadata CSV into a cleaned snapshot",
	Long: `Clean parses publish dates, drops rows without a title, adds word
counts and a preprint flag, removes duplicates by s2_id and by title and
doi, and fills missing journal and source values. The result is written
as CSV or into a SQLite snapshot.

Columns missing from the input are tolerated; the affected step uses a
default. Clean fails when no titled rows remain.`,
	RunE: runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	input, _ := cmd.Flags().GetString("input")
	out := cmd.OutOrStdout()

	cleaned, err := cleanFile(cfg, input, out)
	if err != nil {
		return err
	}
	run := snapshot.Run{ID: uuid.NewString(), Source: input}
	return writeSnapshot(cmd.Context(), cfg.Snapshot, cleaned, run, out)
}

func init() {
	cleanCmd.Flags().String("input", "metadata.csv", "raw metadata CSV")
	addNormalizeFlags(cleanCmd)
	addSnapshotFlags(cleanCmd)

	rootCmd.AddCommand(cleanCmd)
}
