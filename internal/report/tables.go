// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pdiddy/paper-trends/pkg/types"
)

// table is one CSV file of the report.
type table struct {
	name   string
	header []string
	rows   [][]string
}

// Tables returns the CSV file names WriteCSVTables would write for r.
func Tables(r types.Report) []string {
	ts := tables(r)
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.name
	}
	return names
}

// WriteCSVTables writes one CSV file per non-empty report table into dir
// and returns the paths written. The n-gram tables are always written.
func WriteCSVTables(dir string, r types.Report) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	var paths []string
	for _, t := range tables(r) {
		path := filepath.Join(dir, t.name)
		if err := writeTable(path, t); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeTable(path string, t table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	cw := csv.NewWriter(f)
	if err := cw.Write(t.header); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := cw.WriteAll(t.rows); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func tables(r types.Report) []table {
	var out []table

	if r.Temporal.Available {
		yearly := table{name: "publications_by_year.csv", header: []string{"year", "count"}}
		for _, p := range r.Temporal.Yearly {
			yearly.rows = append(yearly.rows, []string{p.Period, strconv.Itoa(p.Count)})
		}
		monthly := table{name: "publications_monthly.csv", header: []string{"month", "count", "rolling_mean"}}
		for i, p := range r.Temporal.Monthly {
			mean := ""
			if i < len(r.Temporal.Rolling) {
				mean = strconv.FormatFloat(r.Temporal.Rolling[i].Mean, 'f', -1, 64)
			}
			monthly.rows = append(monthly.rows, []string{p.Period, strconv.Itoa(p.Count), mean})
		}
		out = append(out, yearly, monthly)
	}

	if len(r.Journals) > 0 {
		out = append(out, categoryTable("top_journals.csv", string(types.ColJournal), r.Journals))
	}
	if !r.Cumulative.IsEmpty() {
		cum := table{
			name:   "cumulative_top5_journals.csv",
			header: append([]string{"year"}, r.Cumulative.Journals...),
		}
		for i, y := range r.Cumulative.Years {
			row := []string{strconv.Itoa(y)}
			for _, n := range r.Cumulative.Totals[i] {
				row = append(row, strconv.Itoa(n))
			}
			cum.rows = append(cum.rows, row)
		}
		out = append(out, cum)
	}
	if len(r.Sources) > 0 {
		out = append(out, categoryTable("top_sources.csv", string(types.ColSource), r.Sources))
	}

	out = append(out,
		tokenTable("top_unigrams.csv", "unigram", r.Unigrams),
		tokenTable("top_bigrams.csv", "bigram", r.Bigrams),
	)
	return out
}

func categoryTable(name, column string, counts []types.CategoryCount) table {
	t := table{name: name, header: []string{column, "count"}}
	for _, c := range counts {
		t.rows = append(t.rows, []string{c.Value, strconv.Itoa(c.Count)})
	}
	return t
}

func tokenTable(name, column string, counts []types.TokenCount) table {
	t := table{name: name, header: []string{column, "count"}}
	for _, c := range counts {
		t.rows = append(t.rows, []string{c.Token, strconv.Itoa(c.Count)})
	}
	return t
}
