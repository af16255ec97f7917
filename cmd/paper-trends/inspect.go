// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-trends/internal/dataset"
	"github.com/pdiddy/paper-trends/pkg/types"
)

const previewWidth = 40

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the shape and recognized columns of a metadata CSV",
	Long: `Inspect prints the row and column counts of a metadata CSV, which of
the recognized columns it carries, which are missing, and a short preview
of the first rows.`,
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	preview, _ := cmd.Flags().GetInt("preview")

	ds, err := dataset.LoadCSV(input)
	if err != nil {
		return err
	}
	printInspection(cmd.OutOrStdout(), input, ds, preview)
	return nil
}

func printInspection(w io.Writer, name string, ds types.Dataset, preview int) {
	schema := ds.Schema()
	fmt.Fprintf(w, "%s: %d rows, %d columns\n", name, ds.Len(), len(ds.Columns))
	fmt.Fprintf(w, "columns: %s\n", strings.Join(ds.Columns, ", "))
	fmt.Fprintf(w, "recognized: %s\n", joinColumns(schema.Columns()))
	fmt.Fprintf(w, "missing: %s\n", joinColumns(schema.Missing()))

	cols := schema.Columns()
	if preview <= 0 || len(cols) == 0 {
		return
	}
	fmt.Fprintln(w)
	for i, rec := range ds.Records {
		if i == preview {
			break
		}
		fmt.Fprintf(w, "row %d\n", i+1)
		for _, c := range cols {
			v := rec.Get(c)
			if len(v) > previewWidth {
				v = v[:previewWidth-3] + "..."
			}
			fmt.Fprintf(w, "  %-12s  %s\n", c, v)
		}
	}
}

func joinColumns(cols []types.Column) string {
	if len(cols) == 0 {
		return "none"
	}
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func init() {
	inspectCmd.Flags().String("input", "metadata.csv", "metadata CSV to inspect")
	inspectCmd.Flags().Int("preview", 3, "number of rows to preview")

	rootCmd.AddCommand(inspectCmd)
}
