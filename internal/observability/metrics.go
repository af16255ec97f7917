// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds the pipeline metrics. It is separate from the default
// registry so textfile output carries only pipeline series.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// Drop reasons used as the reason label of RowsDropped.
const (
	ReasonMissingTitle   = "missing_title"
	ReasonDuplicateID    = "duplicate_s2_id"
	ReasonDuplicateTitle = "duplicate_title"
)

var (
	RowsLoaded = factory.NewCounter(prometheus.CounterOpts{
		Name: "paper_trends_rows_loaded_total",
		Help: "The total number of raw rows handed to normalization",
	})

	RowsDropped = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "paper_trends_rows_dropped_total",
		Help: "The total number of rows removed during normalization by reason",
	}, []string{"reason"})

	RowsCleaned = factory.NewCounter(prometheus.CounterOpts{
		Name: "paper_trends_rows_cleaned_total",
		Help: "The total number of rows surviving normalization",
	})

	UnparseableDates = factory.NewCounter(prometheus.CounterOpts{
		Name: "paper_trends_unparseable_dates_total",
		Help: "The total number of publish_time values that could not be parsed",
	})

	MissingColumns = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "paper_trends_missing_columns_total",
		Help: "The total number of datasets lacking a recognized column",
	}, []string{"column"})

	StageDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "paper_trends_stage_duration_seconds",
		Help:    "Duration of pipeline stages",
		Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60},
	}, []string{"stage"})

	DistinctTokens = factory.NewGaugeVec(prometheus.GaugeOpts{
		Name: "paper_trends_distinct_tokens",
		Help: "Number of distinct n-grams counted in the last aggregation",
	}, []string{"kind"})
)

// WriteTextfile writes the current pipeline metrics to path in the
// Prometheus text exposition format.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("writing metrics file: %w", err)
	}
	return nil
}
