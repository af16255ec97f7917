// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize turns a raw metadata table into a cleaned,
// deduplicated dataset. Column absence is an expected schema variant:
// every step branches on the dataset Schema and substitutes a default
// when its input column is missing.
package normalize

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/paper-trends/internal/observability"
	"github.com/pdiddy/paper-trends/pkg/types"
)

// Summary holds counts from one normalization run.
type Summary struct {
	Input            int            `json:"input" yaml:"input"`
	DroppedNoTitle   int            `json:"dropped_no_title" yaml:"dropped_no_title"`
	Dedup            DedupStats     `json:"dedup" yaml:"dedup"`
	UnparseableDates int            `json:"unparseable_dates" yaml:"unparseable_dates"`
	Output           int            `json:"output" yaml:"output"`
	PreprintColumn   types.Column   `json:"preprint_column,omitempty" yaml:"preprint_column,omitempty"`
	Missing          []types.Column `json:"missing_columns,omitempty" yaml:"missing_columns,omitempty"`
	Warnings         []Warning      `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Dropped returns the number of input rows that did not survive.
func (s Summary) Dropped() int {
	return s.DroppedNoTitle + s.Dedup.Total()
}

// Normalizer cleans raw datasets. It holds only immutable settings and is
// safe for concurrent use.
type Normalizer struct {
	cfg    types.NormalizeConfig
	logger *zerolog.Logger
}

// New returns a Normalizer. A nil logger discards log output.
func New(cfg types.NormalizeConfig, logger *zerolog.Logger) *Normalizer {
	return &Normalizer{
		cfg:    cfg.WithDefaults(),
		logger: observability.OrNop(logger),
	}
}

// Normalize applies, in order: date parsing, title filtering, word
// counts, the preprint flag, deduplication, and categorical fill. The
// input is not modified. It fails only with *EmptyDatasetError.
func (n *Normalizer) Normalize(ds types.Dataset) (types.CleanedDataset, Summary, error) {
	start := time.Now()
	defer func() {
		observability.StageDuration.WithLabelValues("normalize").Observe(time.Since(start).Seconds())
	}()

	schema := ds.Schema()
	summary := Summary{Input: ds.Len(), Missing: schema.Missing()}
	observability.RowsLoaded.Add(float64(ds.Len()))

	if ds.Len() == 0 {
		return types.CleanedDataset{}, summary, &EmptyDatasetError{Input: 0, Reason: "no input rows"}
	}

	for _, col := range summary.Missing {
		summary.Warnings = append(summary.Warnings, Warning{Kind: WarnMissingColumn, Column: col})
		observability.MissingColumns.WithLabelValues(string(col)).Inc()
		n.logger.Debug().Str("column", string(col)).Msg("Recognized column absent, using default")
	}

	records := make([]types.CleanedRecord, len(ds.Records))
	for i, raw := range ds.Records {
		records[i] = types.CleanedRecord{Fields: raw.Clone()}
	}

	n.parseDates(records, schema, &summary)

	records = n.filterTitles(records, schema, &summary)
	if len(records) == 0 {
		return types.CleanedDataset{}, summary, &EmptyDatasetError{Input: summary.Input, Reason: "no rows with a title"}
	}
	// From here on title is treated as present; when the source lacked it
	// every title is the empty string.
	outSchema := schema.With(types.ColTitle)

	countWords(records, schema)

	detect, column := choosePreprint(schema, preprintStrategies(n.cfg.PreprintMarker))
	summary.PreprintColumn = column
	for i := range records {
		records[i].IsPreprint = detect(records[i].Fields)
	}

	records, summary.Dedup = Deduplicate(records, outSchema, n.logger)
	observability.RowsDropped.WithLabelValues(observability.ReasonDuplicateID).Add(float64(summary.Dedup.ByID))
	observability.RowsDropped.WithLabelValues(observability.ReasonDuplicateTitle).Add(float64(summary.Dedup.ByTitle))

	n.fillCategories(records, schema)

	summary.Output = len(records)
	observability.RowsCleaned.Add(float64(summary.Output))

	n.logger.Info().
		Int("input", summary.Input).
		Int("dropped_no_title", summary.DroppedNoTitle).
		Int("dropped_duplicate_id", summary.Dedup.ByID).
		Int("dropped_duplicate_title", summary.Dedup.ByTitle).
		Int("unparseable_dates", summary.UnparseableDates).
		Int("output", summary.Output).
		Msg("Normalized dataset")

	return types.CleanedDataset{
		Schema:  outSchema,
		Columns: types.OutputColumns(ds.Columns, schema),
		Records: records,
	}, summary, nil
}

func (n *Normalizer) parseDates(records []types.CleanedRecord, schema types.Schema, summary *Summary) {
	if !schema.Has(types.ColPublishTime) {
		return
	}
	for i := range records {
		raw := records[i].Fields.Get(types.ColPublishTime)
		if raw == "" {
			continue
		}
		t, ok := ParseDate(raw)
		if !ok {
			summary.UnparseableDates++
			summary.Warnings = append(summary.Warnings, Warning{
				Kind:   WarnUnparseableDate,
				Column: types.ColPublishTime,
				Row:    i + 1,
				Value:  raw,
			})
			observability.UnparseableDates.Inc()
			n.logger.Debug().Int("row", i+1).Str("value", raw).Msg("Unparseable publish_time")
			continue
		}
		records[i].PublishTime = t
		records[i].Year = t.Year()
		records[i].Month = MonthStart(t)
	}
}

func (n *Normalizer) filterTitles(records []types.CleanedRecord, schema types.Schema, summary *Summary) []types.CleanedRecord {
	if !schema.Has(types.ColTitle) {
		return records
	}
	kept := records[:0]
	for _, rec := range records {
		if strings.TrimSpace(rec.Title()) == "" {
			summary.DroppedNoTitle++
			continue
		}
		kept = append(kept, rec)
	}
	observability.RowsDropped.WithLabelValues(observability.ReasonMissingTitle).Add(float64(summary.DroppedNoTitle))
	return kept
}

func countWords(records []types.CleanedRecord, schema types.Schema) {
	hasAbstract := schema.Has(types.ColAbstract)
	for i := range records {
		records[i].TitleWordCount = len(strings.Fields(records[i].Title()))
		if hasAbstract {
			records[i].AbstractWordCount = len(strings.Fields(records[i].Fields.Get(types.ColAbstract)))
		}
	}
}

func (n *Normalizer) fillCategories(records []types.CleanedRecord, schema types.Schema) {
	for _, col := range []types.Column{types.ColJournal, types.ColSource} {
		if !schema.Has(col) {
			continue
		}
		for i := range records {
			if records[i].Fields.IsNull(col) {
				records[i].Fields[string(col)] = n.cfg.UnknownLabel
			}
		}
	}
}
