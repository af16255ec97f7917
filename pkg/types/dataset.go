// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Column names a recognized metadata column. Datasets from different
// snapshots carry different subsets of these.
type Column string

const (
	ColTitle       Column = "title"
	ColAbstract    Column = "abstract"
	ColPublishTime Column = "publish_time"
	ColJournal     Column = "journal"
	ColSource      Column = "source_x"
	ColDOI         Column = "doi"
	ColS2ID        Column = "s2_id"
	ColArxivID     Column = "arxiv_id"
)

// RecognizedColumns lists every column the pipeline knows how to use, in
// a fixed order.
var RecognizedColumns = []Column{
	ColTitle, ColAbstract, ColPublishTime, ColJournal,
	ColSource, ColDOI, ColS2ID, ColArxivID,
}

// Schema records which recognized columns a dataset carries. It is
// computed once when a dataset is loaded; every later branch consults
// it instead of probing records.
type Schema struct {
	present map[Column]bool
}

// NewSchema returns a Schema containing exactly cols.
func NewSchema(cols ...Column) Schema {
	s := Schema{present: make(map[Column]bool, len(cols))}
	for _, c := range cols {
		s.present[c] = true
	}
	return s
}

// DetectSchema builds a Schema from a header row. Unrecognized names are
// ignored; surrounding whitespace is not significant.
func DetectSchema(header []string) Schema {
	var cols []Column
	for _, h := range header {
		name := Column(strings.TrimSpace(h))
		for _, rc := range RecognizedColumns {
			if name == rc {
				cols = append(cols, rc)
			}
		}
	}
	return NewSchema(cols...)
}

// Has reports whether col is present.
func (s Schema) Has(col Column) bool {
	return s.present[col]
}

// With returns a copy of s with col marked present.
func (s Schema) With(col Column) Schema {
	out := NewSchema(s.Columns()...)
	out.present[col] = true
	return out
}

// Columns returns the present recognized columns in RecognizedColumns order.
func (s Schema) Columns() []Column {
	var cols []Column
	for _, c := range RecognizedColumns {
		if s.present[c] {
			cols = append(cols, c)
		}
	}
	return cols
}

// Missing returns the recognized columns that are absent.
func (s Schema) Missing() []Column {
	var cols []Column
	for _, c := range RecognizedColumns {
		if !s.present[c] {
			cols = append(cols, c)
		}
	}
	return cols
}

// RawRecord maps a column name to its cell text. A missing key and an
// empty cell both mean null.
type RawRecord map[string]string

// Get returns the value of col, or "" when null.
func (r RawRecord) Get(col Column) string {
	return r[string(col)]
}

// IsNull reports whether col has no value.
func (r RawRecord) IsNull(col Column) bool {
	return r[string(col)] == ""
}

// Clone returns a shallow copy of r.
func (r RawRecord) Clone() RawRecord {
	out := make(RawRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Dataset is a raw tabular dataset as supplied by a loader.
type Dataset struct {
	// Columns is the header in source order, recognized or not.
	Columns []string `json:"columns" yaml:"columns"`

	// Records holds one entry per data row in source order.
	Records []RawRecord `json:"records" yaml:"records"`
}

// Schema returns the recognized-column flags for the dataset header.
func (d Dataset) Schema() Schema {
	return DetectSchema(d.Columns)
}

// Len returns the number of rows.
func (d Dataset) Len() int {
	return len(d.Records)
}
