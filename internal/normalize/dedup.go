// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"github.com/rs/zerolog"

	"github.com/pdiddy/paper-trends/internal/observability"
	"github.com/pdiddy/paper-trends/pkg/types"
)

// DedupStats counts rows removed by each deduplication pass.
type DedupStats struct {
	ByID    int `json:"by_s2_id" yaml:"by_s2_id"`
	ByTitle int `json:"by_title" yaml:"by_title"`
}

// Total returns the number of rows removed.
func (s DedupStats) Total() int {
	return s.ByID + s.ByTitle
}

// dedupPass drops later records whose key repeats an earlier one. key
// returns ok=false for records that cannot be keyed; those are never
// duplicates.
type dedupPass struct {
	reason string
	key    func(rec types.CleanedRecord) (string, bool)
}

// dedupPasses returns the passes to apply for schema, in order. The s2_id
// pass runs only when the column exists; the title pass always runs and
// keys on (title, doi) when doi exists. The passes compound.
func dedupPasses(schema types.Schema) []dedupPass {
	var passes []dedupPass
	if schema.Has(types.ColS2ID) {
		passes = append(passes, dedupPass{
			reason: observability.ReasonDuplicateID,
			key: func(rec types.CleanedRecord) (string, bool) {
				id := rec.Fields.Get(types.ColS2ID)
				return id, id != ""
			},
		})
	}

	if schema.Has(types.ColDOI) {
		passes = append(passes, dedupPass{
			reason: observability.ReasonDuplicateTitle,
			key: func(rec types.CleanedRecord) (string, bool) {
				return rec.Title() + "\x00" + rec.Fields.Get(types.ColDOI), true
			},
		})
	} else {
		passes = append(passes, dedupPass{
			reason: observability.ReasonDuplicateTitle,
			key: func(rec types.CleanedRecord) (string, bool) {
				return rec.Title(), true
			},
		})
	}
	return passes
}

// Deduplicate removes duplicate records according to schema, keeping the
// first occurrence and the input order. Running it on its own output
// removes nothing.
func Deduplicate(records []types.CleanedRecord, schema types.Schema, logger *zerolog.Logger) ([]types.CleanedRecord, DedupStats) {
	logger = observability.OrNop(logger)

	var stats DedupStats
	for _, pass := range dedupPasses(schema) {
		seen := make(map[string]bool, len(records))
		kept := make([]types.CleanedRecord, 0, len(records))

		for _, rec := range records {
			key, ok := pass.key(rec)
			if !ok {
				kept = append(kept, rec)
				continue
			}
			if seen[key] {
				logger.Debug().
					Str("reason", pass.reason).
					Str("title", rec.Title()).
					Str("s2_id", rec.Fields.Get(types.ColS2ID)).
					Msg("Dropping duplicate record")
				if pass.reason == observability.ReasonDuplicateID {
					stats.ByID++
				} else {
					stats.ByTitle++
				}
				continue
			}
			seen[key] = true
			kept = append(kept, rec)
		}
		records = kept
	}
	return records, stats
}
