// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-trends/internal/dataset"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Copy the first rows of a metadata CSV into a smaller file",
	Long: `Sample copies the header and the first --rows data rows of a metadata
CSV unchanged. Use it to iterate on a full-size metadata.csv quickly.`,
	RunE: runSample,
}

func runSample(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	rows, _ := cmd.Flags().GetInt("rows")
	if input == output {
		return fmt.Errorf("--output must differ from --input")
	}

	src, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening %s: %w", input, err)
	}
	defer src.Close()

	dst, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}

	n, err := dataset.Sample(src, dst, rows)
	if err != nil {
		dst.Close()
		return fmt.Errorf("sampling %s: %w", input, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", output, err)
	}

	logger.Info().Str("input", input).Str("output", output).Int("rows", n).Msg("Wrote sample")
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d rows)\n", output, n)
	return nil
}

func init() {
	sampleCmd.Flags().String("input", "metadata.csv", "metadata CSV to sample")
	sampleCmd.Flags().String("output", "metadata_sample.csv", "sample CSV to write")
	sampleCmd.Flags().Int("rows", 50000, "number of data rows to copy (0 = all)")

	rootCmd.AddCommand(sampleCmd)
}
