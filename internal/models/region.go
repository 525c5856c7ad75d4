package models

import (
	"encoding/json"
	"math"
	"strconv"
)

// Ratio is a coverage ratio in percent. Division by zero is not guarded upstream,
// so it may be infinite or NaN; those are encoded as JSON strings.
type Ratio float64

func (r Ratio) MarshalJSON() ([]byte, error) {
	f := float64(r)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(f)
}

func (r *Ratio) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*r = Ratio(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*r = Ratio(f)
	return nil
}

// RegionSummary is one row of the aggregate coverage query.
type RegionSummary struct {
	Region       string `json:"region"`
	StationCount int    `json:"station_count"`
	VehicleCount int    `json:"vehicle_count"`
	CoverageRate Ratio  `json:"coverage_ratio"`
}
