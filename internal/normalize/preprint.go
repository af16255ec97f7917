// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/pdiddy/paper-trends/pkg/types"
)

// preprintStrategy decides the preprint flag from one column. Strategies
// are tried in order; the first whose column is present decides for
// every record.
type preprintStrategy struct {
	column types.Column
	detect func(rec types.RawRecord) bool
}

func preprintStrategies(marker string) []preprintStrategy {
	fold := cases.Fold()
	foldedMarker := fold.String(marker)

	return []preprintStrategy{
		{
			column: types.ColSource,
			detect: func(rec types.RawRecord) bool {
				v := rec.Get(types.ColSource)
				return v != "" && strings.Contains(fold.String(v), foldedMarker)
			},
		},
		{
			column: types.ColArxivID,
			detect: func(rec types.RawRecord) bool {
				return !rec.IsNull(types.ColArxivID)
			},
		},
	}
}

// choosePreprint returns the detector of the first applicable strategy,
// or a detector that always reports false when none applies. The second
// return value names the deciding column ("" when none).
func choosePreprint(schema types.Schema, strategies []preprintStrategy) (func(types.RawRecord) bool, types.Column) {
	for _, s := range strategies {
		if schema.Has(s.column) {
			return s.detect, s.column
		}
	}
	return func(types.RawRecord) bool { return false }, ""
}
