// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/paper-trends/internal/dataset"
	"github.com/pdiddy/paper-trends/internal/lexical"
	"github.com/pdiddy/paper-trends/internal/normalize"
	"github.com/pdiddy/paper-trends/internal/report"
	"github.com/pdiddy/paper-trends/internal/snapshot"
	"github.com/pdiddy/paper-trends/pkg/types"
)

// cleanFile loads the raw CSV at input and normalizes it, printing the
// normalization summary to w.
func cleanFile(cfg types.PipelineConfig, input string, w io.Writer) (types.CleanedDataset, error) {
	raw, err := dataset.LoadCSV(input)
	if err != nil {
		return types.CleanedDataset{}, err
	}
	fmt.Fprintf(w, "loaded %s (%d rows, %d columns)\n", input, raw.Len(), len(raw.Columns))

	cleaned, summary, err := normalize.New(cfg.Normalize, &logger).Normalize(raw)
	printNormalizeSummary(w, summary)
	if err != nil {
		return types.CleanedDataset{}, fmt.Errorf("cleaning %s: %w", input, err)
	}
	return cleaned, nil
}

func printNormalizeSummary(w io.Writer, s normalize.Summary) {
	for _, col := range s.Missing {
		fmt.Fprintf(w, "missing column %s, using default\n", col)
	}
	if s.PreprintColumn != "" {
		fmt.Fprintf(w, "preprint flag from %s\n", s.PreprintColumn)
	}
	fmt.Fprintf(w, "\ninput: %d, no title: %d, duplicate id: %d, duplicate title: %d, unparseable dates: %d, output: %d\n",
		s.Input, s.DroppedNoTitle, s.Dedup.ByID, s.Dedup.ByTitle, s.UnparseableDates, s.Output)
}

// writeSnapshot stores ds in the configured snapshot format.
func writeSnapshot(ctx context.Context, cfg types.SnapshotConfig, ds types.CleanedDataset, run snapshot.Run, w io.Writer) error {
	switch cfg.Format {
	case types.SnapshotCSV:
		if err := dataset.SaveCSV(cfg.Path, ds); err != nil {
			return err
		}
	case types.SnapshotSQLite:
		store, err := snapshot.NewStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Write(ctx, ds, run); err != nil {
			return fmt.Errorf("writing snapshot %s: %w", cfg.Path, err)
		}
	default:
		return fmt.Errorf("unsupported snapshot format %q: use csv or sqlite", cfg.Format)
	}
	fmt.Fprintf(w, "wrote %s (%d rows)\n", cfg.Path, ds.Len())
	return nil
}

// loadSnapshot reads a dataset for analysis. An explicit input CSV wins;
// otherwise the configured snapshot is read. CSV input may be raw or
// cleaned: only dates are derived from it.
func loadSnapshot(ctx context.Context, cfg types.SnapshotConfig, input string) (types.CleanedDataset, error) {
	if input == "" && cfg.Format == types.SnapshotSQLite {
		store, err := snapshot.NewStore(cfg)
		if err != nil {
			return types.CleanedDataset{}, err
		}
		defer store.Close()
		ds, err := store.Load(ctx)
		if err != nil {
			return types.CleanedDataset{}, fmt.Errorf("loading snapshot %s: %w", cfg.Path, err)
		}
		return ds, nil
	}

	if input == "" {
		input = cfg.Path
	}
	raw, err := dataset.LoadCSV(input)
	if err != nil {
		return types.CleanedDataset{}, err
	}
	return lexical.Prepare(raw), nil
}

// analyze aggregates ds, prints the summary table, and exports the report.
func analyze(cfg types.PipelineConfig, ds types.CleanedDataset, show int, w io.Writer) (types.Report, error) {
	r := lexical.Aggregate(ds, lexical.Options{Config: cfg.Aggregate, Logger: &logger})
	report.FormatTable(r, w, show)
	fmt.Fprintln(w)
	if _, err := report.Export(r, cfg.Export, w); err != nil {
		return r, err
	}
	return r, nil
}
