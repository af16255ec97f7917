// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexical

import (
	"sort"

	"github.com/pdiddy/paper-trends/pkg/types"
)

// RankCategories counts the non-empty values of col and returns the top n
// by descending count, ties by ascending value. n <= 0 returns all.
func RankCategories(records []types.CleanedRecord, col types.Column, n int) []types.CategoryCount {
	counts := make(map[string]int)
	for _, r := range records {
		if v := r.Fields.Get(col); v != "" {
			counts[v]++
		}
	}

	ranked := make([]types.CategoryCount, 0, len(counts))
	for v, c := range counts {
		ranked = append(ranked, types.CategoryCount{Value: v, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Value < ranked[j].Value
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// CumulativeByYear builds a year × journal matrix of running publication
// totals for the given journals. Rows are the years in which any of them
// published, ascending; columns keep the order of journals. The matrix is
// empty when no record of those journals has a year.
func CumulativeByYear(records []types.CleanedRecord, journals []string) types.CumulativeMatrix {
	if len(journals) == 0 {
		return types.CumulativeMatrix{}
	}
	col := make(map[string]int, len(journals))
	for i, j := range journals {
		col[j] = i
	}

	perYear := make(map[int][]int)
	for _, r := range records {
		j, ok := col[r.Journal()]
		if !ok || r.Year == 0 {
			continue
		}
		row, ok := perYear[r.Year]
		if !ok {
			row = make([]int, len(journals))
			perYear[r.Year] = row
		}
		row[j]++
	}
	if len(perYear) == 0 {
		return types.CumulativeMatrix{}
	}

	years := make([]int, 0, len(perYear))
	for y := range perYear {
		years = append(years, y)
	}
	sort.Ints(years)

	totals := make([][]int, len(years))
	for i, y := range years {
		totals[i] = make([]int, len(journals))
		for j, c := range perYear[y] {
			totals[i][j] = c
			if i > 0 {
				totals[i][j] += totals[i-1][j]
			}
		}
	}

	return types.CumulativeMatrix{
		Years:    years,
		Journals: append([]string(nil), journals...),
		Totals:   totals,
	}
}
