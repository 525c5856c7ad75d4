package views

import (
	"time"

	"evcharge-dashboard/internal/models"
	"evcharge-dashboard/internal/places"
	"evcharge-dashboard/internal/service"
)

// Page names for the sidebar selector.
const (
	PageAnalytics = "analytics"
	PageExplore   = "explore"
)

// Layout is shared by every page.
type Layout struct {
	Title  string
	Active string
	Path   string
}

// RankRow is one line of the top or bottom coverage table.
type RankRow struct {
	Region       string
	StationCount int
	VehicleCount int
	Ratio        string
}

type AnalyticsPage struct {
	Layout
	Year         int
	StationChart BarChart
	RatioChart   BarChart
	Top          []RankRow
	Bottom       []RankRow
}

// NewAnalyticsPage builds the analytics view model.
func NewAnalyticsPage(a *service.Analytics) *AnalyticsPage {
	return &AnalyticsPage{
		Layout:       Layout{Title: "🚗 전기차 충전소 시각화 대시보드", Active: PageAnalytics, Path: "/analytics"},
		Year:         a.Year,
		StationChart: StationCountChart(a.Regions),
		RatioChart:   RatioChart(a.Ranked),
		Top:          rankRows(a.Top),
		Bottom:       rankRows(a.Bottom),
	}
}

func rankRows(rows []models.RegionSummary) []RankRow {
	out := make([]RankRow, len(rows))
	for i, r := range rows {
		out[i] = RankRow{
			Region:       r.Region,
			StationCount: r.StationCount,
			VehicleCount: r.VehicleCount,
			Ratio:        FormatRatio(r.CoverageRate),
		}
	}
	return out
}

// DetailField is a labelled line of the station detail block.
type DetailField struct {
	Label string
	Value string
}

// CategoryOption is a checkbox of the amenity multi-select.
type CategoryOption struct {
	Key     string
	Label   string
	Checked bool
}

type ExplorePage struct {
	Layout
	Cities     []string
	City       string
	Districts  []string
	District   string
	Stations   []string
	Station    string
	Detail     []DetailField
	Categories []CategoryOption
	Overlay    []models.PlaceOfInterest
	NotFound   bool
}

// NewExplorePage builds the drill-down view model from the resolved selection.
func NewExplorePage(e *service.Exploration) *ExplorePage {
	p := &ExplorePage{
		Layout:     Layout{Title: "📍 구별 전기차 충전소 조회", Active: PageExplore, Path: "/explore"},
		Categories: categoryOptions(e.Categories),
	}

	switch s := e.Selection.(type) {
	case service.NoneSelected:
		p.Cities = s.Cities
	case service.CitySelected:
		p.fillCity(s)
	case service.DistrictSelected:
		p.fillDistrict(s)
	case service.StationSelected:
		p.fillDistrict(s.DistrictSelected)
		p.Station = s.Station.Name
	}

	p.NotFound = e.StationMissing
	if e.Station != nil {
		p.Detail = StationDetail(e.Station)
		p.Overlay = e.Overlay
	}
	return p
}

func (p *ExplorePage) fillCity(s service.CitySelected) {
	p.Cities = s.Cities
	p.City = s.City
	p.Districts = s.Districts
}

func (p *ExplorePage) fillDistrict(s service.DistrictSelected) {
	p.fillCity(s.CitySelected)
	p.District = s.District
	p.Stations = s.StationNames()
}

func categoryOptions(selected []places.Category) []CategoryOption {
	checked := make(map[string]bool, len(selected))
	for _, c := range selected {
		checked[c.Key] = true
	}
	out := make([]CategoryOption, len(places.Categories))
	for i, c := range places.Categories {
		out[i] = CategoryOption{Key: c.Key, Label: c.Label, Checked: checked[c.Key]}
	}
	return out
}

// StationDetail lists the station fields in display order.
func StationDetail(s *models.Station) []DetailField {
	return []DetailField{
		{"이름", s.Name},
		{"주소", text(s.Address)},
		{"운영기관", text(s.Operator)},
		{"설치년도", text(s.InstallYear)},
		{"운영시간", text(s.UseTime)},
		{"주차요금 무료", text(s.ParkingFree)},
		{"이용제한", text(s.LimitYn) + " / " + text(s.LimitDetail)},
		{"비고", text(s.Note)},
		{"삭제여부", text(s.DelYn)},
		{"상태 갱신일시", timestamp(s.StatUpdateAt)},
	}
}

func text(v *string) string {
	if v == nil {
		return "None"
	}
	return *v
}

func timestamp(t *time.Time) string {
	if t == nil {
		return "None"
	}
	return t.Format("2006-01-02 15:04:05")
}

// ErrorPage is shown when a page cannot be built.
type ErrorPage struct {
	Layout
	Status  int
	Message string
}
