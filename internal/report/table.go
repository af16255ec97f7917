// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/paper-trends/pkg/types"
)

const (
	labelWidth  = 50
	defaultRows = 10
)

// FormatTable writes a human-readable summary of r to w, showing at most
// rows entries per ranking (default 10).
func FormatTable(r types.Report, w io.Writer, rows int) {
	if rows <= 0 {
		rows = defaultRows
	}

	fmt.Fprintf(w, "Run %s: %d records\n", r.RunID, r.Records)

	if !r.Temporal.Available {
		fmt.Fprintln(w, "\nNo publish dates available; time series skipped.")
	} else {
		fmt.Fprintf(w, "\n%-6s  %s\n", "Year", "Count")
		fmt.Fprintln(w, strings.Repeat("-", 20))
		for _, p := range r.Temporal.Yearly {
			fmt.Fprintf(w, "%-6s  %d\n", p.Period, p.Count)
		}
		last := r.Temporal.Rolling[len(r.Temporal.Rolling)-1]
		fmt.Fprintf(w, "\n%d months, latest %s rolling mean %.2f\n", len(r.Temporal.Monthly), last.Period, last.Mean)
	}

	rankSection(w, "Journal", r.Journals, rows)
	rankSection(w, "Source", r.Sources, rows)

	if !r.Cumulative.IsEmpty() {
		final := r.Cumulative.Totals[len(r.Cumulative.Years)-1]
		fmt.Fprintf(w, "\nCumulative through %d\n", r.Cumulative.Years[len(r.Cumulative.Years)-1])
		for j, name := range r.Cumulative.Journals {
			fmt.Fprintf(w, "  %-*s  %d\n", labelWidth, truncate(name), final[j])
		}
	}

	tokenSection(w, "Unigram", r.Unigrams, rows)
	tokenSection(w, "Bigram", r.Bigrams, rows)
}

func rankSection(w io.Writer, label string, counts []types.CategoryCount, rows int) {
	if len(counts) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%-4s  %-*s  %s\n", "Rank", labelWidth, label, "Count")
	fmt.Fprintln(w, strings.Repeat("-", labelWidth+20))
	for i, c := range counts {
		if i == rows {
			fmt.Fprintf(w, "... %d more\n", len(counts)-rows)
			break
		}
		fmt.Fprintf(w, "%-4d  %-*s  %d\n", i+1, labelWidth, truncate(c.Value), c.Count)
	}
}

func tokenSection(w io.Writer, label string, counts []types.TokenCount, rows int) {
	if len(counts) == 0 {
		fmt.Fprintf(w, "\nNo %ss found.\n", strings.ToLower(label))
		return
	}
	cc := make([]types.CategoryCount, len(counts))
	for i, c := range counts {
		cc[i] = types.CategoryCount{Value: c.Token, Count: c.Count}
	}
	rankSection(w, label, cc, rows)
}

func truncate(s string) string {
	if len(s) > labelWidth {
		return s[:labelWidth-3] + "..."
	}
	return s
}
