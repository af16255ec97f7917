// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"errors"
	"fmt"

	"github.com/pdiddy/paper-trends/pkg/types"
)

// ErrEmptyDataset matches any *EmptyDatasetError via errors.Is.
var ErrEmptyDataset = errors.New("empty dataset")

// EmptyDatasetError reports that normalization had no usable rows. It is
// the only condition that aborts a pipeline run.
type EmptyDatasetError struct {
	// Input is the number of rows handed to normalization.
	Input int

	// Reason says which stage left nothing: "no input rows" or "no rows
	// with a title".
	Reason string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("empty dataset: %s (%d input rows)", e.Reason, e.Input)
}

// Is reports whether target is ErrEmptyDataset.
func (e *EmptyDatasetError) Is(target error) bool {
	return target == ErrEmptyDataset
}

// WarningKind classifies a non-fatal condition met during normalization.
type WarningKind string

const (
	// WarnUnparseableDate marks a publish_time value that did not parse.
	// The record keeps going with an absent date, year, and month.
	WarnUnparseableDate WarningKind = "unparseable_date"

	// WarnMissingColumn marks a recognized column absent from the input.
	// The derived field takes its default.
	WarnMissingColumn WarningKind = "missing_column"
)

// Warning is one non-fatal condition. Row is the 1-based data row for
// per-record warnings and 0 for dataset-level ones.
type Warning struct {
	Kind   WarningKind  `json:"kind" yaml:"kind"`
	Column types.Column `json:"column" yaml:"column"`
	Row    int          `json:"row,omitempty" yaml:"row,omitempty"`
	Value  string       `json:"value,omitempty" yaml:"value,omitempty"`
}

func (w Warning) String() string {
	if w.Row > 0 {
		return fmt.Sprintf("%s: column %s row %d value %q", w.Kind, w.Column, w.Row, w.Value)
	}
	return fmt.Sprintf("%s: column %s", w.Kind, w.Column)
}
