// Package transform derives dashboard columns from raw query results.
package transform

import (
	"cmp"
	"slices"

	"evcharge-dashboard/internal/models"
)

// CoverageRatio returns stations per registered vehicle in percent.
// A zero vehicle count is not guarded and yields +Inf, or NaN when stations is also zero.
func CoverageRatio(stations, vehicles int) float64 {
	return float64(stations) / float64(vehicles) * 100
}

// WithCoverage fills CoverageRate on every row.
func WithCoverage(rows []models.RegionSummary) []models.RegionSummary {
	out := make([]models.RegionSummary, len(rows))
	for i, r := range rows {
		r.CoverageRate = models.Ratio(CoverageRatio(r.StationCount, r.VehicleCount))
		out[i] = r
	}
	return out
}

// SortByRatio returns a copy of rows ordered by coverage ratio.
// The sort is stable, so ties keep load order. NaN orders below every number.
func SortByRatio(rows []models.RegionSummary, descending bool) []models.RegionSummary {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b models.RegionSummary) int {
		c := cmp.Compare(float64(a.CoverageRate), float64(b.CoverageRate))
		if descending {
			return -c
		}
		return c
	})
	return sorted
}

// RankByRatio returns at most n rows from the top (descending) or bottom of the ratio ranking.
func RankByRatio(rows []models.RegionSummary, n int, descending bool) []models.RegionSummary {
	sorted := SortByRatio(rows, descending)
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
