package service

import (
	"errors"
	"slices"

	"evcharge-dashboard/internal/models"
	"evcharge-dashboard/internal/transform"
)

var (
	// ErrUnknownOption is returned when a selected value is not among the current options.
	ErrUnknownOption = errors.New("selection is not one of the available options")
	// ErrSelectionOutOfOrder is returned when a lower level is chosen before its parent.
	ErrSelectionOutOfOrder = errors.New("parent level must be selected first")
)

// Stage names how far the drill-down has narrowed.
type Stage int

const (
	StageNone Stage = iota
	StageCity
	StageDistrict
	StageStation
)

// Selection is one of NoneSelected, CitySelected, DistrictSelected or StationSelected.
type Selection interface {
	Stage() Stage
}

type NoneSelected struct {
	Cities []string
}

type CitySelected struct {
	Cities    []string
	City      string
	Districts []string
}

type DistrictSelected struct {
	CitySelected
	District string
	Stations []models.StationAddress
}

type StationSelected struct {
	DistrictSelected
	Station models.StationAddress
}

func (NoneSelected) Stage() Stage     { return StageNone }
func (CitySelected) Stage() Stage     { return StageCity }
func (DistrictSelected) Stage() Stage { return StageDistrict }
func (StationSelected) Stage() Stage  { return StageStation }

// StationNames lists the station picker options.
func (d DistrictSelected) StationNames() []string {
	return transform.StationNames(d.Stations)
}

// Drilldown walks the city, district, station selection over a fixed address table.
// Choosing a level always discards every level below it.
type Drilldown struct {
	rows  []models.StationAddress
	state Selection
}

// NewDrilldown starts with nothing selected.
func NewDrilldown(rows []models.StationAddress) *Drilldown {
	return &Drilldown{
		rows:  rows,
		state: NoneSelected{Cities: transform.Cities(rows)},
	}
}

func (d *Drilldown) State() Selection {
	return d.state
}

// Reset returns to NoneSelected.
func (d *Drilldown) Reset() Selection {
	d.state = NoneSelected{Cities: transform.Cities(d.rows)}
	return d.state
}

// SelectCity is valid from any state.
func (d *Drilldown) SelectCity(city string) (Selection, error) {
	cities := transform.Cities(d.rows)
	if !slices.Contains(cities, city) {
		return d.state, ErrUnknownOption
	}
	d.state = CitySelected{
		Cities:    cities,
		City:      city,
		Districts: transform.Districts(d.rows, city),
	}
	return d.state, nil
}

// SelectDistrict requires a city.
func (d *Drilldown) SelectDistrict(district string) (Selection, error) {
	city, ok := d.citySelection()
	if !ok {
		return d.state, ErrSelectionOutOfOrder
	}
	if !slices.Contains(city.Districts, district) {
		return d.state, ErrUnknownOption
	}
	d.state = DistrictSelected{
		CitySelected: city,
		District:     district,
		Stations:     transform.FilterByDistrict(d.rows, city.City, district),
	}
	return d.state, nil
}

// SelectStation requires a district. Names may repeat; the first match wins.
func (d *Drilldown) SelectStation(name string) (Selection, error) {
	district, ok := d.districtSelection()
	if !ok {
		return d.state, ErrSelectionOutOfOrder
	}
	station, found := transform.FindByName(district.Stations, name)
	if !found {
		return d.state, ErrUnknownOption
	}
	d.state = StationSelected{DistrictSelected: district, Station: station}
	return d.state, nil
}

func (d *Drilldown) citySelection() (CitySelected, bool) {
	switch s := d.state.(type) {
	case CitySelected:
		return s, true
	case DistrictSelected:
		return s.CitySelected, true
	case StationSelected:
		return s.CitySelected, true
	}
	return CitySelected{}, false
}

func (d *Drilldown) districtSelection() (DistrictSelected, bool) {
	switch s := d.state.(type) {
	case DistrictSelected:
		return s, true
	case StationSelected:
		return s.DistrictSelected, true
	}
	return DistrictSelected{}, false
}

// SelectionRequest is the raw picker values of one page request; empty means unset.
type SelectionRequest struct {
	City     string
	District string
	Station  string
}

// Resolve applies the request top-down and stops at the first empty or invalid level,
// so a stale district or station left over from another city is dropped.
func Resolve(rows []models.StationAddress, req SelectionRequest) Selection {
	d := NewDrilldown(rows)
	steps := []struct {
		value string
		apply func(string) (Selection, error)
	}{
		{req.City, d.SelectCity},
		{req.District, d.SelectDistrict},
		{req.Station, d.SelectStation},
	}
	for _, step := range steps {
		if step.value == "" {
			break
		}
		if _, err := step.apply(step.value); err != nil {
			break
		}
	}
	return d.State()
}
