// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Derived column names written alongside the source columns in a cleaned
// snapshot.
const (
	ColYear              = "year"
	ColMonth             = "month"
	ColTitleWordCount    = "title_word_count"
	ColAbstractWordCount = "abstract_word_count"
	ColIsPreprint        = "is_preprint"
)

// CleanedRecord is one paper after normalization: the source fields plus
// the values derived from them.
type CleanedRecord struct {
	// Fields holds every source cell, with categorical fills applied.
	Fields RawRecord `json:"fields" yaml:"fields"`

	// PublishTime is the parsed publication date. Zero when absent or
	// unparseable.
	PublishTime time.Time `json:"publish_time,omitempty" yaml:"publish_time,omitempty"`

	// Year is the calendar year of PublishTime, 0 when absent.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// Month is PublishTime truncated to the first day of its month (UTC).
	Month time.Time `json:"month,omitempty" yaml:"month,omitempty"`

	// TitleWordCount is the number of whitespace-separated title tokens.
	TitleWordCount int `json:"title_word_count" yaml:"title_word_count"`

	// AbstractWordCount is 0 when the abstract column is absent.
	AbstractWordCount int `json:"abstract_word_count" yaml:"abstract_word_count"`

	// IsPreprint is inferred from source_x text or arxiv_id presence.
	IsPreprint bool `json:"is_preprint" yaml:"is_preprint"`
}

// Title returns the record title.
func (r CleanedRecord) Title() string { return r.Fields.Get(ColTitle) }

// Journal returns the journal name, "" when null.
func (r CleanedRecord) Journal() string { return r.Fields.Get(ColJournal) }

// Source returns the source_x value, "" when null.
func (r CleanedRecord) Source() string { return r.Fields.Get(ColSource) }

// HasDate reports whether the publication date parsed.
func (r CleanedRecord) HasDate() bool { return !r.PublishTime.IsZero() }

// HasMonth reports whether the record has a publication month.
func (r CleanedRecord) HasMonth() bool { return !r.Month.IsZero() }

// CleanedDataset is the output of normalization.
type CleanedDataset struct {
	// Schema is the recognized-column set of the source dataset. The
	// title column is always marked present after normalization.
	Schema Schema `json:"-" yaml:"-"`

	// Columns is the output column order, source columns first.
	Columns []string `json:"columns" yaml:"columns"`

	// Records holds the cleaned rows in source order.
	Records []CleanedRecord `json:"records" yaml:"records"`
}

// Len returns the number of rows.
func (d CleanedDataset) Len() int {
	return len(d.Records)
}

// OutputColumns returns the cleaned snapshot column order for a source
// header: source columns, then publish_time and title when they were
// added, interleaved with the derived columns the way the cleaner
// appends them. Names already in the source header are not repeated.
func OutputColumns(source []string, schema Schema) []string {
	cols := append([]string(nil), source...)
	seen := make(map[string]bool, len(source))
	for _, c := range source {
		seen[c] = true
	}
	add := func(names ...string) {
		for _, n := range names {
			if !seen[n] {
				seen[n] = true
				cols = append(cols, n)
			}
		}
	}

	if !schema.Has(ColPublishTime) {
		add(string(ColPublishTime))
	}
	add(ColYear, ColMonth)
	if !schema.Has(ColTitle) {
		add(string(ColTitle))
	}
	add(ColTitleWordCount, ColAbstractWordCount, ColIsPreprint)
	return cols
}
