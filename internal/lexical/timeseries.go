// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexical

import (
	"sort"
	"strconv"
	"time"

	"github.com/pdiddy/paper-trends/pkg/types"
)

// YearlySeries counts records per publication year, ascending. Records
// without a year are skipped.
func YearlySeries(records []types.CleanedRecord) []types.TimeSeriesPoint {
	counts := make(map[int]int)
	for _, r := range records {
		if r.Year != 0 {
			counts[r.Year]++
		}
	}

	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)

	points := make([]types.TimeSeriesPoint, len(years))
	for i, y := range years {
		points[i] = types.TimeSeriesPoint{
			Period: strconv.Itoa(y),
			Start:  time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC),
			Count:  counts[y],
		}
	}
	return points
}

// MonthlySeries counts records per publication month, ascending. Months
// with no records do not appear.
func MonthlySeries(records []types.CleanedRecord) []types.TimeSeriesPoint {
	counts := make(map[time.Time]int)
	for _, r := range records {
		if r.HasMonth() {
			counts[r.Month]++
		}
	}

	months := make([]time.Time, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	points := make([]types.TimeSeriesPoint, len(months))
	for i, m := range months {
		points[i] = types.TimeSeriesPoint{
			Period: m.Format("2006-01"),
			Start:  m,
			Count:  counts[m],
		}
	}
	return points
}

// RollingMean returns the trailing mean of the last window points at each
// position. Near the start the window narrows to the points available.
func RollingMean(points []types.TimeSeriesPoint, window int) []types.RollingPoint {
	if window <= 0 {
		window = 1
	}
	out := make([]types.RollingPoint, len(points))
	sum := 0
	for i, p := range points {
		sum += p.Count
		if i >= window {
			sum -= points[i-window].Count
		}
		n := min(i+1, window)
		out[i] = types.RollingPoint{
			Period: p.Period,
			Start:  p.Start,
			Mean:   float64(sum) / float64(n),
		}
	}
	return out
}
