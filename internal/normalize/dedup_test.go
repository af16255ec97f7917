// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/paper-trends/pkg/types"
)

func rec(fields types.RawRecord) types.CleanedRecord {
	return types.CleanedRecord{Fields: fields}
}

func titles(records []types.CleanedRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Title()
	}
	return out
}

func TestDeduplicate(t *testing.T) {
	tests := []struct {
		name      string
		schema    types.Schema
		records   []types.CleanedRecord
		want      []string
		wantStats DedupStats
	}{
		{
			name:   "s2_id first occurrence wins",
			schema: types.NewSchema(types.ColTitle, types.ColS2ID),
			records: []types.CleanedRecord{
				rec(types.RawRecord{"title": "first", "s2_id": "A"}),
				rec(types.RawRecord{"title": "second", "s2_id": "A"}),
				rec(types.RawRecord{"title": "third", "s2_id": "B"}),
			},
			want:      []string{"first", "third"},
			wantStats: DedupStats{ByID: 1},
		},
		{
			name:   "empty s2_id never collides",
			schema: types.NewSchema(types.ColTitle, types.ColS2ID),
			records: []types.CleanedRecord{
				rec(types.RawRecord{"title": "a"}),
				rec(types.RawRecord{"title": "b"}),
			},
			want: []string{"a", "b"},
		},
		{
			name:   "title and doi pair",
			schema: types.NewSchema(types.ColTitle, types.ColDOI),
			records: []types.CleanedRecord{
				rec(types.RawRecord{"title": "same", "doi": "10.1/a"}),
				rec(types.RawRecord{"title": "same", "doi": "10.1/b"}),
				rec(types.RawRecord{"title": "same", "doi": "10.1/a"}),
				rec(types.RawRecord{"title": "same"}),
				rec(types.RawRecord{"title": "same"}),
			},
			want:      []string{"same", "same", "same"},
			wantStats: DedupStats{ByTitle: 2},
		},
		{
			name:   "title alone without doi",
			schema: types.NewSchema(types.ColTitle),
			records: []types.CleanedRecord{
				rec(types.RawRecord{"title": "x"}),
				rec(types.RawRecord{"title": "y"}),
				rec(types.RawRecord{"title": "x"}),
			},
			want:      []string{"x", "y"},
			wantStats: DedupStats{ByTitle: 1},
		},
		{
			name:   "passes compound",
			schema: types.NewSchema(types.ColTitle, types.ColS2ID, types.ColDOI),
			records: []types.CleanedRecord{
				rec(types.RawRecord{"title": "t1", "s2_id": "A", "doi": "d1"}),
				rec(types.RawRecord{"title": "t2", "s2_id": "A", "doi": "d2"}),
				rec(types.RawRecord{"title": "t1", "s2_id": "B", "doi": "d1"}),
				rec(types.RawRecord{"title": "t3", "s2_id": "C", "doi": "d3"}),
			},
			want:      []string{"t1", "t3"},
			wantStats: DedupStats{ByID: 1, ByTitle: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, stats := Deduplicate(tt.records, tt.schema, nil)
			assert.Equal(t, tt.want, titles(got))
			assert.Equal(t, tt.wantStats, stats)
			assert.Equal(t, len(tt.records)-len(got), stats.Total())
		})
	}
}

func TestDeduplicateIdempotent(t *testing.T) {
	schema := types.NewSchema(types.ColTitle, types.ColS2ID, types.ColDOI)
	records := []types.CleanedRecord{
		rec(types.RawRecord{"title": "t1", "s2_id": "A", "doi": "d1"}),
		rec(types.RawRecord{"title": "t2", "s2_id": "A", "doi": "d2"}),
		rec(types.RawRecord{"title": "t1", "doi": "d1"}),
		rec(types.RawRecord{"title": "t4"}),
		rec(types.RawRecord{"title": "t4"}),
		rec(types.RawRecord{"title": "t5", "s2_id": "E"}),
	}

	once, _ := Deduplicate(records, schema, nil)
	twice, stats := Deduplicate(once, schema, nil)

	assert.Equal(t, once, twice)
	assert.Zero(t, stats.Total())
}

func TestDeduplicateKeepsInputOrder(t *testing.T) {
	schema := types.NewSchema(types.ColTitle)
	records := []types.CleanedRecord{
		rec(types.RawRecord{"title": "c"}),
		rec(types.RawRecord{"title": "a"}),
		rec(types.RawRecord{"title": "c"}),
		rec(types.RawRecord{"title": "b"}),
	}
	got, _ := Deduplicate(records, schema, nil)
	assert.Equal(t, []string{"c", "a", "b"}, titles(got))
}
