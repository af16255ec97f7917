// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-trends/pkg/types"
)

// --- test helpers ---

var fullColumns = []string{
	"cord_uid", "title", "abstract", "publish_time", "journal",
	"source_x", "doi", "s2_id", "arxiv_id",
}

func fullDataset() types.Dataset {
	return types.Dataset{
		Columns: fullColumns,
		Records: []types.RawRecord{
			{"cord_uid": "u1", "title": "COVID-19 Vaccine Trial Results", "abstract": "We test a vaccine.",
				"publish_time": "2020-03-15", "journal": "Nature", "source_x": "PMC", "doi": "10.1/a", "s2_id": "A1"},
			{"cord_uid": "u2", "title": "New Mask Study", "abstract": "Masks work well here",
				"publish_time": "2021-07-01", "source_x": "medRxiv; preprint", "doi": "10.1/b", "s2_id": "B2", "arxiv_id": "2101.00001"},
			{"cord_uid": "u3", "title": "Transmission in Schools", "publish_time": "2020-11-02",
				"journal": "Lancet", "doi": "10.1/c", "s2_id": "C3"},
		},
	}
}

// without returns a copy of ds with col removed from the header and rows.
func without(ds types.Dataset, col types.Column) types.Dataset {
	out := types.Dataset{}
	for _, c := range ds.Columns {
		if c != string(col) {
			out.Columns = append(out.Columns, c)
		}
	}
	for _, r := range ds.Records {
		rec := r.Clone()
		delete(rec, string(col))
		out.Records = append(out.Records, rec)
	}
	return out
}

func normalizer() *Normalizer {
	return New(types.NormalizeConfig{}, nil)
}

// --- end-to-end example ---

func TestNormalizeCordExample(t *testing.T) {
	ds := types.Dataset{
		Columns: []string{"title", "publish_time", "journal", "s2_id"},
		Records: []types.RawRecord{
			{"title": "COVID-19 Vaccine Trial Results", "publish_time": "2020-03-15", "journal": "Nature", "s2_id": "A1"},
			{"title": "COVID-19 Vaccine Trial Results", "publish_time": "2020-03-20", "journal": "Nature", "s2_id": "A1"},
			{"title": "New Mask Study", "publish_time": "2021-07-01", "journal": "Lancet", "s2_id": "B2"},
		},
	}

	out, summary, err := normalizer().Normalize(ds)
	require.NoError(t, err)
	require.Equal(t, 2, out.Len())

	first := out.Records[0]
	assert.Equal(t, time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC), first.PublishTime)
	assert.Equal(t, 2020, first.Year)
	assert.Equal(t, time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), first.Month)
	assert.Equal(t, 4, first.TitleWordCount)
	assert.Equal(t, 2021, out.Records[1].Year)

	assert.Equal(t, 3, summary.Input)
	assert.Equal(t, 1, summary.Dedup.ByID)
	assert.Equal(t, 0, summary.Dedup.ByTitle)
	assert.Equal(t, 2, summary.Output)
	assert.Equal(t, 1, summary.Dropped())
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	ds := types.Dataset{
		Columns: []string{"title", "journal"},
		Records: []types.RawRecord{{"title": "A paper"}},
	}
	_, _, err := normalizer().Normalize(ds)
	require.NoError(t, err)
	assert.True(t, ds.Records[0].IsNull(types.ColJournal))
}

// --- steps ---

func TestNormalizeDates(t *testing.T) {
	ds := types.Dataset{
		Columns: []string{"title", "publish_time"},
		Records: []types.RawRecord{
			{"title": "a", "publish_time": "2020-03-15"},
			{"title": "b", "publish_time": "not a date"},
			{"title": "c"},
			{"title": "d", "publish_time": "2019"},
		},
	}

	out, summary, err := normalizer().Normalize(ds)
	require.NoError(t, err)
	require.Equal(t, 4, out.Len())

	assert.True(t, out.Records[0].HasDate())
	assert.False(t, out.Records[1].HasDate())
	assert.Zero(t, out.Records[1].Year)
	assert.False(t, out.Records[1].HasMonth())
	assert.False(t, out.Records[2].HasDate())
	assert.Equal(t, 2019, out.Records[3].Year)

	assert.Equal(t, 1, summary.UnparseableDates, "empty values are not warnings")
	var dateWarnings []Warning
	for _, w := range summary.Warnings {
		if w.Kind == WarnUnparseableDate {
			dateWarnings = append(dateWarnings, w)
		}
	}
	require.Len(t, dateWarnings, 1)
	assert.Equal(t, 2, dateWarnings[0].Row)
	assert.Equal(t, "not a date", dateWarnings[0].Value)
}

func TestNormalizeDropsMissingTitles(t *testing.T) {
	ds := types.Dataset{
		Columns: []string{"title", "journal"},
		Records: []types.RawRecord{
			{"title": "Kept", "journal": "Nature"},
			{"journal": "Cell"},
			{"title": "   ", "journal": "Cell"},
		},
	}
	out, summary, err := normalizer().Normalize(ds)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Len())
	assert.Equal(t, 2, summary.DroppedNoTitle)
}

func TestNormalizeWordCounts(t *testing.T) {
	ds := types.Dataset{
		Columns: []string{"title", "abstract"},
		Records: []types.RawRecord{
			{"title": "  Spaced   out\ttitle ", "abstract": "one two three four"},
			{"title": "No abstract"},
		},
	}
	out, _, err := normalizer().Normalize(ds)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Records[0].TitleWordCount)
	assert.Equal(t, 4, out.Records[0].AbstractWordCount)
	assert.Equal(t, 0, out.Records[1].AbstractWordCount)
}

func TestNormalizePreprintTiers(t *testing.T) {
	tests := []struct {
		name       string
		columns    []string
		records    []types.RawRecord
		want       []bool
		wantColumn types.Column
	}{
		{
			name:    "source_x decides even when arxiv_id present",
			columns: []string{"title", "source_x", "arxiv_id"},
			records: []types.RawRecord{
				{"title": "a", "source_x": "bioRxiv PREPRINT"},
				{"title": "b", "source_x": "PMC", "arxiv_id": "2001.1"},
				{"title": "c", "arxiv_id": "2001.2"},
			},
			want:       []bool{true, false, false},
			wantColumn: types.ColSource,
		},
		{
			name:    "arxiv_id fallback",
			columns: []string{"title", "arxiv_id"},
			records: []types.RawRecord{
				{"title": "a", "arxiv_id": "2001.1"},
				{"title": "b"},
			},
			want:       []bool{true, false},
			wantColumn: types.ColArxivID,
		},
		{
			name:    "neither column",
			columns: []string{"title"},
			records: []types.RawRecord{{"title": "a"}},
			want:    []bool{false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, summary, err := normalizer().Normalize(types.Dataset{Columns: tt.columns, Records: tt.records})
			require.NoError(t, err)
			require.Equal(t, len(tt.want), out.Len())
			for i, want := range tt.want {
				assert.Equal(t, want, out.Records[i].IsPreprint, "record %d", i)
			}
			assert.Equal(t, tt.wantColumn, summary.PreprintColumn)
		})
	}
}

func TestNormalizeCustomPreprintMarker(t *testing.T) {
	n := New(types.NormalizeConfig{PreprintMarker: "rxiv"}, nil)
	out, _, err := n.Normalize(types.Dataset{
		Columns: []string{"title", "source_x"},
		Records: []types.RawRecord{{"title": "a", "source_x": "medRxiv"}},
	})
	require.NoError(t, err)
	assert.True(t, out.Records[0].IsPreprint)
}

func TestNormalizeCategoricalFill(t *testing.T) {
	out, _, err := normalizer().Normalize(types.Dataset{
		Columns: []string{"title", "journal", "source_x"},
		Records: []types.RawRecord{{"title": "a"}, {"title": "b", "journal": "Cell", "source_x": "PMC"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Unknown", out.Records[0].Journal())
	assert.Equal(t, "Unknown", out.Records[0].Source())
	assert.Equal(t, "Cell", out.Records[1].Journal())
}

func TestNormalizeFillSkipsAbsentColumns(t *testing.T) {
	out, _, err := normalizer().Normalize(types.Dataset{
		Columns: []string{"title"},
		Records: []types.RawRecord{{"title": "a"}},
	})
	require.NoError(t, err)
	_, hasJournal := out.Records[0].Fields[string(types.ColJournal)]
	assert.False(t, hasJournal)
}

// --- errors ---

func TestNormalizeEmptyDataset(t *testing.T) {
	tests := []struct {
		name string
		ds   types.Dataset
	}{
		{"no rows", types.Dataset{Columns: []string{"title"}}},
		{"no titled rows", types.Dataset{
			Columns: []string{"title", "journal"},
			Records: []types.RawRecord{{"journal": "Nature"}, {"title": ""}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := normalizer().Normalize(tt.ds)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrEmptyDataset))

			var empty *EmptyDatasetError
			require.True(t, errors.As(err, &empty))
			assert.Equal(t, len(tt.ds.Records), empty.Input)
		})
	}
}

// --- column absence ---

func TestNormalizeColumnAbsenceTolerance(t *testing.T) {
	base := fullDataset()
	baseOut, _, err := normalizer().Normalize(base)
	require.NoError(t, err)
	require.Equal(t, 3, baseOut.Len())

	for _, col := range types.RecognizedColumns {
		t.Run(string(col), func(t *testing.T) {
			ds := without(base, col)
			out, summary, err := normalizer().Normalize(ds)
			require.NoError(t, err)
			assert.Contains(t, summary.Missing, col)

			if col == types.ColTitle {
				// Every title is empty, so the title/doi pass keys on doi alone.
				assert.Equal(t, 3, out.Len())
				for _, r := range out.Records {
					assert.Equal(t, "", r.Title())
					assert.Equal(t, 0, r.TitleWordCount)
				}
				assert.Contains(t, out.Columns, string(types.ColTitle))
				return
			}
			assert.Equal(t, baseOut.Len(), out.Len())

			switch col {
			case types.ColAbstract:
				for _, r := range out.Records {
					assert.Equal(t, 0, r.AbstractWordCount)
				}
			case types.ColPublishTime:
				for _, r := range out.Records {
					assert.False(t, r.HasDate())
					assert.Zero(t, r.Year)
				}
				assert.Contains(t, out.Columns, string(types.ColPublishTime))
			case types.ColSource:
				// Falls back to arxiv_id.
				assert.False(t, out.Records[0].IsPreprint)
				assert.True(t, out.Records[1].IsPreprint)
				assert.Equal(t, types.ColArxivID, summary.PreprintColumn)
			case types.ColJournal:
				_, ok := out.Records[0].Fields[string(types.ColJournal)]
				assert.False(t, ok)
			}
		})
	}
}

func TestNormalizeWithoutTitleOrDOICollapses(t *testing.T) {
	ds := without(without(fullDataset(), types.ColTitle), types.ColDOI)
	ds = without(ds, types.ColS2ID)

	out, summary, err := normalizer().Normalize(ds)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Len())
	assert.Equal(t, 2, summary.Dedup.ByTitle)
}
