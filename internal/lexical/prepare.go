// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexical

import (
	"github.com/pdiddy/paper-trends/internal/normalize"
	"github.com/pdiddy/paper-trends/pkg/types"
)

// Prepare derives dates from an unnormalized dataset so it can be
// aggregated directly. Nothing is dropped, deduplicated, or filled, and
// the raw records are shared rather than copied; neither side may modify
// them afterwards.
func Prepare(raw types.Dataset) types.CleanedDataset {
	schema := raw.Schema()
	hasDate := schema.Has(types.ColPublishTime)

	records := make([]types.CleanedRecord, len(raw.Records))
	for i, r := range raw.Records {
		records[i].Fields = r
		if !hasDate {
			continue
		}
		if t, ok := normalize.ParseDate(r.Get(types.ColPublishTime)); ok {
			records[i].PublishTime = t
			records[i].Year = t.Year()
			records[i].Month = normalize.MonthStart(t)
		}
	}

	return types.CleanedDataset{
		Schema:  schema,
		Columns: raw.Columns,
		Records: records,
	}
}

// FilterYears keeps the records whose year lies within [from, to]. A zero
// bound is open; with both bounds zero ds is returned unchanged. Records
// without a year are dropped whenever a bound is set.
func FilterYears(ds types.CleanedDataset, from, to int) types.CleanedDataset {
	if from == 0 && to == 0 {
		return ds
	}
	kept := make([]types.CleanedRecord, 0, len(ds.Records))
	for _, r := range ds.Records {
		if r.Year == 0 {
			continue
		}
		if from != 0 && r.Year < from {
			continue
		}
		if to != 0 && r.Year > to {
			continue
		}
		kept = append(kept, r)
	}
	ds.Records = kept
	return ds
}
