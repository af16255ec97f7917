// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// TimeSeriesPoint is a publication count for one period.
type TimeSeriesPoint struct {
	// Period is "2006" for yearly points and "2006-01" for monthly points.
	Period string `json:"period" yaml:"period"`

	// Start is the first instant of the period (UTC).
	Start time.Time `json:"start" yaml:"start"`

	// Count is the number of records in the period.
	Count int `json:"count" yaml:"count"`
}

// RollingPoint is a trailing moving average value for one period.
type RollingPoint struct {
	Period string    `json:"period" yaml:"period"`
	Start  time.Time `json:"start" yaml:"start"`
	Mean   float64   `json:"mean" yaml:"mean"`
}

// CategoryCount is one row of a frequency ranking.
type CategoryCount struct {
	Value string `json:"value" yaml:"value"`
	Count int    `json:"count" yaml:"count"`
}

// TokenCount is an n-gram and its occurrence count across all titles.
// Bigram tokens hold both words separated by a single space.
type TokenCount struct {
	Token string `json:"token" yaml:"token"`
	Count int    `json:"count" yaml:"count"`
}

// CumulativeMatrix holds running per-year publication totals for a set of
// journals. Totals[i][j] is the cumulative count of Journals[j] through
// Years[i].
type CumulativeMatrix struct {
	Years    []int    `json:"years" yaml:"years"`
	Journals []string `json:"journals" yaml:"journals"`
	Totals   [][]int  `json:"totals" yaml:"totals"`
}

// IsEmpty reports whether the matrix has no cells.
func (m CumulativeMatrix) IsEmpty() bool {
	return len(m.Years) == 0 || len(m.Journals) == 0
}

// Column returns the cumulative series for journal, or nil if the
// journal is not in the matrix.
func (m CumulativeMatrix) Column(journal string) []int {
	for j, name := range m.Journals {
		if name != journal {
			continue
		}
		col := make([]int, len(m.Years))
		for i := range m.Years {
			col[i] = m.Totals[i][j]
		}
		return col
	}
	return nil
}

// TemporalReport holds the publication time series.
type TemporalReport struct {
	// Available is false when no record has a parseable date.
	Available bool              `json:"available" yaml:"available"`
	Yearly    []TimeSeriesPoint `json:"yearly" yaml:"yearly"`
	Monthly   []TimeSeriesPoint `json:"monthly" yaml:"monthly"`
	Rolling   []RollingPoint    `json:"rolling" yaml:"rolling"`
}

// Report bundles every aggregate sub-result for one run. Any sub-result
// may be empty when its input column or data is absent.
type Report struct {
	RunID       string    `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Records     int       `json:"records" yaml:"records"`

	Temporal   TemporalReport   `json:"temporal" yaml:"temporal"`
	Journals   []CategoryCount  `json:"top_journals" yaml:"top_journals"`
	Sources    []CategoryCount  `json:"top_sources" yaml:"top_sources"`
	Cumulative CumulativeMatrix `json:"cumulative_top_journals" yaml:"cumulative_top_journals"`
	Unigrams   []TokenCount     `json:"top_unigrams" yaml:"top_unigrams"`
	Bigrams    []TokenCount     `json:"top_bigrams" yaml:"top_bigrams"`
}
