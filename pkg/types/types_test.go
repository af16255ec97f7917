// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSchema(t *testing.T) {
	s := DetectSchema([]string{" title", "publish_time", "cord_uid", "s2_id "})

	assert.True(t, s.Has(ColTitle))
	assert.True(t, s.Has(ColPublishTime))
	assert.True(t, s.Has(ColS2ID))
	assert.False(t, s.Has(ColDOI))
	assert.Equal(t, []Column{ColTitle, ColPublishTime, ColS2ID}, s.Columns())
	assert.Contains(t, s.Missing(), ColArxivID)
}

func TestSchemaZeroValue(t *testing.T) {
	var s Schema
	assert.False(t, s.Has(ColTitle))
	assert.Len(t, s.Missing(), len(RecognizedColumns))
}

func TestSchemaWithDoesNotMutate(t *testing.T) {
	s := NewSchema(ColJournal)
	s2 := s.With(ColTitle)

	assert.False(t, s.Has(ColTitle))
	assert.True(t, s2.Has(ColTitle))
	assert.True(t, s2.Has(ColJournal))
}

func TestOutputColumns(t *testing.T) {
	tests := []struct {
		name   string
		source []string
		want   []string
	}{
		{
			name:   "all present",
			source: []string{"title", "publish_time", "journal"},
			want: []string{"title", "publish_time", "journal", "year", "month",
				"title_word_count", "abstract_word_count", "is_preprint"},
		},
		{
			name:   "title and date absent",
			source: []string{"journal"},
			want: []string{"journal", "publish_time", "year", "month", "title",
				"title_word_count", "abstract_word_count", "is_preprint"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OutputColumns(tt.source, DetectSchema(tt.source))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCumulativeMatrixColumn(t *testing.T) {
	m := CumulativeMatrix{
		Years:    []int{2020, 2021},
		Journals: []string{"Nature", "Lancet"},
		Totals:   [][]int{{1, 0}, {3, 2}},
	}
	assert.Equal(t, []int{0, 2}, m.Column("Lancet"))
	assert.Nil(t, m.Column("Cell"))
	assert.False(t, m.IsEmpty())
	assert.True(t, CumulativeMatrix{}.IsEmpty())
}

func TestPipelineConfigDefaults(t *testing.T) {
	cfg := PipelineConfig{Snapshot: SnapshotConfig{Format: SnapshotSQLite}}.WithDefaults()

	assert.Equal(t, "Unknown", cfg.Normalize.UnknownLabel)
	assert.Equal(t, "preprint", cfg.Normalize.PreprintMarker)
	assert.Equal(t, 3, cfg.Aggregate.RollingWindow)
	assert.Equal(t, 20, cfg.Aggregate.TopCategories)
	assert.Equal(t, 5, cfg.Aggregate.TopTrendJournals)
	assert.Equal(t, 50, cfg.Aggregate.TopNGrams)
	assert.Equal(t, "metadata_cleaned.db", cfg.Snapshot.Path)
	assert.Equal(t, "outputs", cfg.Export.OutputDir)
	assert.Equal(t, ExportYAML, cfg.Export.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestOutputColumnsSkipsExistingDerived(t *testing.T) {
	source := []string{"title", "year", "is_preprint"}
	got := OutputColumns(source, DetectSchema(source))
	assert.Equal(t, []string{"title", "year", "is_preprint", "publish_time", "month",
		"title_word_count", "abstract_word_count"}, got)
}
