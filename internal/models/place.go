package models

// Marker sizes on the overlay map.
const (
	StationMarkerSize = 20
	PlaceMarkerSize   = 10
)

// StationLabel is the overlay type label of the charging station itself.
const StationLabel = "충전소"

// PlaceOfInterest is a point plotted on the station overlay map.
type PlaceOfInterest struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Type     string  `json:"type"`
	Size     int     `json:"size"`
	Distance float64 `json:"distance_m"`
}
