// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lexical computes temporal, categorical, and title n-gram
// statistics over a cleaned metadata dataset. Every sub-result degrades
// to empty when its input column or data is absent.
package lexical

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pdiddy/paper-trends/internal/observability"
	"github.com/pdiddy/paper-trends/pkg/types"
)

// Options controls one aggregation run.
type Options struct {
	// AsOf stamps the report. Zero uses the current time.
	AsOf time.Time

	// Config sizes the rankings and windows. Zero fields use defaults.
	Config types.AggregateConfig

	// Logger receives stage summaries. Nil discards them.
	Logger *zerolog.Logger
}

// Aggregate builds the report for ds. The dataset is read, never
// modified, so the sub-aggregations may run concurrently when
// Config.Parallel is set; each writes a disjoint part of the report.
func Aggregate(ds types.CleanedDataset, opts Options) types.Report {
	start := time.Now()
	defer func() {
		observability.StageDuration.WithLabelValues("aggregate").Observe(time.Since(start).Seconds())
	}()

	cfg := opts.Config.WithDefaults()
	logger := observability.OrNop(opts.Logger)
	asOf := opts.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	ds = FilterYears(ds, cfg.FromYear, cfg.ToYear)
	records := ds.Records

	report := types.Report{
		RunID:       uuid.NewString(),
		GeneratedAt: asOf,
		Records:     len(records),
	}

	tasks := []func(){
		func() { report.Temporal = temporal(records, cfg.RollingWindow) },
		func() {
			if ds.Schema.Has(types.ColJournal) {
				report.Journals = RankCategories(records, types.ColJournal, cfg.TopCategories)
			}
		},
		func() {
			if ds.Schema.Has(types.ColSource) {
				report.Sources = RankCategories(records, types.ColSource, cfg.TopCategories)
			}
		},
		func() {
			if !ds.Schema.Has(types.ColJournal) {
				return
			}
			top := RankCategories(records, types.ColJournal, cfg.TopTrendJournals)
			journals := make([]string, len(top))
			for i, c := range top {
				journals[i] = c.Value
			}
			report.Cumulative = CumulativeByYear(records, journals)
		},
		func() {
			unigrams, bigrams := CountNGrams(titles(records))
			report.Unigrams = unigrams.Top(cfg.TopNGrams)
			report.Bigrams = bigrams.Top(cfg.TopNGrams)
			observability.DistinctTokens.WithLabelValues("unigram").Set(float64(unigrams.Len()))
			observability.DistinctTokens.WithLabelValues("bigram").Set(float64(bigrams.Len()))
		},
	}

	if cfg.Parallel {
		var wg sync.WaitGroup
		for _, task := range tasks {
			wg.Add(1)
			go func(task func()) {
				defer wg.Done()
				task()
			}(task)
		}
		wg.Wait()
	} else {
		for _, task := range tasks {
			task()
		}
	}

	event := logger.Info().
		Str("run_id", report.RunID).
		Int("records", report.Records).
		Int("years", len(report.Temporal.Yearly)).
		Int("months", len(report.Temporal.Monthly)).
		Int("journals", len(report.Journals)).
		Int("sources", len(report.Sources)).
		Int("unigrams", len(report.Unigrams)).
		Int("bigrams", len(report.Bigrams))
	if !report.Temporal.Available {
		event = event.Bool("no_dates", true)
	}
	event.Msg("Aggregated dataset")

	return report
}

func temporal(records []types.CleanedRecord, window int) types.TemporalReport {
	monthly := MonthlySeries(records)
	if len(monthly) == 0 {
		return types.TemporalReport{}
	}
	return types.TemporalReport{
		Available: true,
		Yearly:    YearlySeries(records),
		Monthly:   monthly,
		Rolling:   RollingMean(monthly, window),
	}
}

func titles(records []types.CleanedRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		if t := r.Title(); t != "" {
			out = append(out, t)
		}
	}
	return out
}
