package views

import (
	"html/template"
	"math"
	"strconv"

	"evcharge-dashboard/internal/models"
)

// Bar is one column of a bar chart.
type Bar struct {
	Label     string
	Value     string
	HeightPct float64
	Color     template.CSS
}

// BarChart is a labelled column chart rendered with plain HTML.
type BarChart struct {
	Title  string
	YLabel string
	Bars   []Bar
}

const defaultBarColor = template.CSS("#636efa")

// StationCountChart plots station counts by region in row order.
func StationCountChart(rows []models.RegionSummary) BarChart {
	values := make([]float64, len(rows))
	for i, r := range rows {
		values[i] = float64(r.StationCount)
	}
	_, hi := finiteRange(values)

	chart := BarChart{Title: "시도별 충전소 수", YLabel: "station_count"}
	for i, r := range rows {
		chart.Bars = append(chart.Bars, Bar{
			Label:     r.Region,
			Value:     strconv.Itoa(r.StationCount),
			HeightPct: heightPct(values[i], hi),
			Color:     defaultBarColor,
		})
	}
	return chart
}

// RatioChart plots coverage ratios in row order, coloured by ratio.
func RatioChart(rows []models.RegionSummary) BarChart {
	values := make([]float64, len(rows))
	for i, r := range rows {
		values[i] = float64(r.CoverageRate)
	}
	lo, hi := finiteRange(values)

	chart := BarChart{Title: "충전소 보급률", YLabel: "보급률(%)"}
	for i, r := range rows {
		chart.Bars = append(chart.Bars, Bar{
			Label:     r.Region,
			Value:     FormatRatio(r.CoverageRate),
			HeightPct: heightPct(values[i], hi),
			Color:     ScaleColor(values[i], lo, hi),
		})
	}
	return chart
}

// FormatRatio prints a ratio with four decimals, or inf / NaN.
func FormatRatio(r models.Ratio) string {
	f := float64(r)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', 4, 64)
}

func finiteRange(values []float64) (lo, hi float64) {
	first := true
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if first {
			lo, hi = v, v
			first = false
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

func heightPct(v, hi float64) float64 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case math.IsInf(v, 1) || hi <= 0:
		return 100
	}
	return math.Min(100, v/hi*100)
}
