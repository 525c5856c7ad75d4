package transform

import (
	"slices"
	"strings"

	"evcharge-dashboard/internal/models"
)

// SplitAddress maps the first three single-space separated tokens to city, district and neighborhood.
// Consecutive spaces produce empty tokens; missing tokens leave the component nil.
func SplitAddress(addr *string) models.AddressComponents {
	var parts models.AddressComponents
	if addr == nil {
		return parts
	}

	tokens := strings.Split(*addr, " ")
	slots := []**string{&parts.City, &parts.District, &parts.Neighborhood}
	for i, slot := range slots {
		if i >= len(tokens) {
			break
		}
		tok := tokens[i]
		*slot = &tok
	}
	return parts
}

// WithAddressParts fills Parts on every row.
func WithAddressParts(rows []models.StationAddress) []models.StationAddress {
	out := make([]models.StationAddress, len(rows))
	for i, r := range rows {
		r.Parts = SplitAddress(r.Address)
		out[i] = r
	}
	return out
}

// Cities returns the sorted distinct non-absent city components.
func Cities(rows []models.StationAddress) []string {
	return distinct(rows, func(r models.StationAddress) *string { return r.Parts.City })
}

// Districts returns the sorted distinct districts of stations in city.
func Districts(rows []models.StationAddress, city string) []string {
	return distinct(FilterByCity(rows, city), func(r models.StationAddress) *string { return r.Parts.District })
}

// FilterByCity keeps the rows whose city component equals city exactly.
func FilterByCity(rows []models.StationAddress, city string) []models.StationAddress {
	var out []models.StationAddress
	for _, r := range rows {
		if equals(r.Parts.City, city) {
			out = append(out, r)
		}
	}
	return out
}

// FilterByDistrict keeps the rows whose city and district components equal the arguments exactly.
func FilterByDistrict(rows []models.StationAddress, city, district string) []models.StationAddress {
	var out []models.StationAddress
	for _, r := range rows {
		if equals(r.Parts.City, city) && equals(r.Parts.District, district) {
			out = append(out, r)
		}
	}
	return out
}

// StationNames lists the station names in row order, duplicates included.
func StationNames(rows []models.StationAddress) []string {
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	return names
}

// FindByName returns the first row with the given station name.
func FindByName(rows []models.StationAddress, name string) (models.StationAddress, bool) {
	for _, r := range rows {
		if r.Name == name {
			return r, true
		}
	}
	return models.StationAddress{}, false
}

func equals(v *string, want string) bool {
	return v != nil && *v == want
}

func distinct(rows []models.StationAddress, field func(models.StationAddress) *string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range rows {
		v := field(r)
		if v == nil {
			continue
		}
		if _, ok := seen[*v]; ok {
			continue
		}
		seen[*v] = struct{}{}
		out = append(out, *v)
	}
	slices.Sort(out)
	return out
}
