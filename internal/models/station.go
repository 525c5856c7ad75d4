package models

import "time"

// Station is a single charging station row as stored in the stations table.
// Nullable text columns are pointers so that an absent value stays distinguishable from an empty one.
type Station struct {
	ID           string     `json:"stat_id"`
	ChargerID    *string    `json:"chger_id"`
	Name         string     `json:"stat_nm"`
	Address      *string    `json:"addr"`
	Operator     *string    `json:"busi_nm"`
	InstallYear  *string    `json:"install_year"`
	UseTime      *string    `json:"use_time"`
	ParkingFree  *string    `json:"parking_free"`
	LimitYn      *string    `json:"limit_yn"`
	LimitDetail  *string    `json:"limit_detail"`
	Note         *string    `json:"note"`
	DelYn        *string    `json:"del_yn"`
	StatUpdateAt *time.Time `json:"stat_upd_dt"`
	Latitude     float64    `json:"lat"`
	Longitude    float64    `json:"lng"`
	ZCode        *string    `json:"zcode"`
}

// StationAddress is the light projection used by the drill-down pickers.
type StationAddress struct {
	ID        string            `json:"stat_id"`
	Name      string            `json:"stat_nm"`
	Address   *string           `json:"addr"`
	Latitude  float64           `json:"lat"`
	Longitude float64           `json:"lng"`
	Parts     AddressComponents `json:"parts"`
}

// AddressComponents holds the first three whitespace-separated tokens of an address.
// A nil component means the address had too few tokens.
type AddressComponents struct {
	City         *string `json:"city"`
	District     *string `json:"district"`
	Neighborhood *string `json:"neighborhood"`
}
