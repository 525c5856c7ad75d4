package transform

import (
	"fmt"
	"math"
	"testing"

	"evcharge-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverageRatio(t *testing.T) {
	tests := []struct {
		name     string
		stations int
		vehicles int
		expected float64
	}{
		{name: "one station per hundred vehicles", stations: 1, vehicles: 100, expected: 1},
		{name: "fractional", stations: 2, vehicles: 3, expected: 2.0 / 3.0 * 100},
		{name: "no stations", stations: 0, vehicles: 50, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CoverageRatio(tt.stations, tt.vehicles), 1e-9)
		})
	}
}

func TestCoverageRatio_ZeroVehiclesIsNotGuarded(t *testing.T) {
	assert.True(t, math.IsInf(CoverageRatio(5, 0), 1))
	assert.True(t, math.IsNaN(CoverageRatio(0, 0)))
}

func TestWithCoverage(t *testing.T) {
	rows := []models.RegionSummary{
		{Region: "서울", StationCount: 120, VehicleCount: 4000},
		{Region: "부산", StationCount: 30, VehicleCount: 1500},
	}

	got := WithCoverage(rows)

	require.Len(t, got, 2)
	for _, r := range got {
		assert.InDelta(t, float64(r.StationCount)/float64(r.VehicleCount)*100, float64(r.CoverageRate), 1e-9)
	}
	assert.Zero(t, rows[0].CoverageRate, "input rows must not be mutated")
}

func regions(n int) []models.RegionSummary {
	rows := make([]models.RegionSummary, n)
	for i := range rows {
		rows[i] = models.RegionSummary{
			Region:       fmt.Sprintf("R%02d", i),
			StationCount: i + 1,
			VehicleCount: 100,
		}
	}
	return WithCoverage(rows)
}

func regionNames(rows []models.RegionSummary) map[string]bool {
	out := make(map[string]bool, len(rows))
	for _, r := range rows {
		out[r.Region] = true
	}
	return out
}

func TestRankByRatio_TopAndBottomDisjointOnlyAboveTenRegions(t *testing.T) {
	for _, n := range []int{3, 5, 8, 10, 11, 17} {
		t.Run(fmt.Sprintf("%d regions", n), func(t *testing.T) {
			rows := regions(n)
			top := RankByRatio(rows, 5, true)
			bottom := RankByRatio(rows, 5, false)

			topSet := regionNames(top)
			overlap := false
			for name := range regionNames(bottom) {
				if topSet[name] {
					overlap = true
				}
			}

			// Exactly 10 regions also gives disjoint halves; overlap appears below 10.
			if n >= 10 {
				assert.False(t, overlap)
			} else {
				assert.True(t, overlap)
			}

			sorted := SortByRatio(rows, true)
			assert.Equal(t, sorted[0], top[0])
			assert.Equal(t, sorted[len(sorted)-1], bottom[0])
		})
	}
}

func TestRankByRatio_TiesKeepLoadOrder(t *testing.T) {
	rows := WithCoverage([]models.RegionSummary{
		{Region: "가", StationCount: 1, VehicleCount: 10},
		{Region: "나", StationCount: 1, VehicleCount: 10},
		{Region: "다", StationCount: 5, VehicleCount: 10},
	})

	top := RankByRatio(rows, 3, true)
	assert.Equal(t, []string{"다", "가", "나"}, []string{top[0].Region, top[1].Region, top[2].Region})

	bottom := RankByRatio(rows, 2, false)
	assert.Equal(t, []string{"가", "나"}, []string{bottom[0].Region, bottom[1].Region})
}

func TestSortByRatio_NonFiniteValues(t *testing.T) {
	rows := WithCoverage([]models.RegionSummary{
		{Region: "finite", StationCount: 1, VehicleCount: 10},
		{Region: "inf", StationCount: 1, VehicleCount: 0},
		{Region: "nan", StationCount: 0, VehicleCount: 0},
	})

	desc := SortByRatio(rows, true)
	assert.Equal(t, "inf", desc[0].Region)
	assert.Equal(t, "nan", desc[2].Region)
}
