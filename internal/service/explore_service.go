package service

import (
	"context"
	"errors"
	"fmt"

	"evcharge-dashboard/internal/cache"
	"evcharge-dashboard/internal/models"
	"evcharge-dashboard/internal/places"
	"evcharge-dashboard/internal/transform"

	"github.com/rs/zerolog/log"
)

// ErrStationNotFound is returned when a station id has no row.
var ErrStationNotFound = errors.New("station not found")

// StationRepository interface for dependency injection
type StationRepository interface {
	LoadAllAddresses(ctx context.Context) ([]models.StationAddress, error)
	LoadStationDetail(ctx context.Context, id string) (*models.Station, error)
}

// PlacesSearcher interface for dependency injection
type PlacesSearcher interface {
	SearchNearby(ctx context.Context, lat, lng float64, categoryCode string, radius int) ([]places.Place, error)
}

// ExploreService drives the station drill-down
type ExploreService struct {
	repo   StationRepository
	places PlacesSearcher
	cache  *cache.Cache
	radius int
}

// Exploration is the drill-down page state after one request.
type Exploration struct {
	Selection  Selection
	Station    *models.Station
	Categories []places.Category
	Overlay    []models.PlaceOfInterest
	// StationMissing is set when the picked station has no detail row.
	StationMissing bool
}

// NewExploreService creates a new explore service searching places within radius metres
func NewExploreService(repo StationRepository, searcher PlacesSearcher, c *cache.Cache, radius int) *ExploreService {
	return &ExploreService{repo: repo, places: searcher, cache: c, radius: radius}
}

// Addresses returns every station row with its split address, memoized until invalidated.
func (s *ExploreService) Addresses(ctx context.Context) ([]models.StationAddress, error) {
	rows, err := cache.Load(ctx, s.cache, cache.Key("addresses"), func(ctx context.Context) ([]models.StationAddress, error) {
		rows, err := s.repo.LoadAllAddresses(ctx)
		if err != nil {
			return nil, err
		}
		return transform.WithAddressParts(rows), nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to load addresses: %w", err)
	}
	return rows, nil
}

func (s *ExploreService) Cities(ctx context.Context) ([]string, error) {
	rows, err := s.Addresses(ctx)
	if err != nil {
		return nil, err
	}
	return transform.Cities(rows), nil
}

func (s *ExploreService) Districts(ctx context.Context, city string) ([]string, error) {
	rows, err := s.Addresses(ctx)
	if err != nil {
		return nil, err
	}
	return transform.Districts(rows, city), nil
}

// Stations lists the stations whose address starts with city and district.
func (s *ExploreService) Stations(ctx context.Context, city, district string) ([]models.StationAddress, error) {
	rows, err := s.Addresses(ctx)
	if err != nil {
		return nil, err
	}
	return transform.FilterByDistrict(rows, city, district), nil
}

// StationDetail loads a station, uncached.
func (s *ExploreService) StationDetail(ctx context.Context, id string) (*models.Station, error) {
	station, err := s.repo.LoadStationDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load station %s: %w", id, err)
	}
	if station == nil {
		return nil, ErrStationNotFound
	}
	return station, nil
}

// Overlay returns the station point followed by nearby places for each category, one search per category.
// Search failures are logged and contribute no points.
func (s *ExploreService) Overlay(ctx context.Context, station *models.Station, categories []places.Category) []models.PlaceOfInterest {
	overlay := []models.PlaceOfInterest{{
		Name: station.Name,
		Lat:  station.Latitude,
		Lng:  station.Longitude,
		Type: models.StationLabel,
		Size: models.StationMarkerSize,
	}}

	for _, c := range categories {
		found, err := s.places.SearchNearby(ctx, station.Latitude, station.Longitude, c.Code, s.radius)
		if err != nil {
			log.Warn().Err(err).Str("station", station.ID).Str("category", c.Code).Msg("places search failed, skipping category")
			continue
		}
		for _, p := range found {
			overlay = append(overlay, models.PlaceOfInterest{
				Name:     p.Name,
				Lat:      p.Lat,
				Lng:      p.Lng,
				Type:     c.Label,
				Size:     models.PlaceMarkerSize,
				Distance: DistanceMeters(station.Latitude, station.Longitude, p.Lat, p.Lng),
			})
		}
	}

	return overlay
}

// Explore resolves the pickers and, once a station is chosen, loads its detail and map overlay.
func (s *ExploreService) Explore(ctx context.Context, req SelectionRequest, categories []places.Category) (*Exploration, error) {
	rows, err := s.Addresses(ctx)
	if err != nil {
		return nil, err
	}

	result := &Exploration{
		Selection:  Resolve(rows, req),
		Categories: categories,
	}

	selected, ok := result.Selection.(StationSelected)
	if !ok {
		return result, nil
	}

	station, err := s.StationDetail(ctx, selected.Station.ID)
	if errors.Is(err, ErrStationNotFound) {
		result.StationMissing = true
		return result, nil
	}
	if err != nil {
		return nil, err
	}
	result.Station = station
	result.Overlay = s.Overlay(ctx, station, categories)

	return result, nil
}

// ResolveCategories maps picker values to categories; no values means the default set.
func ResolveCategories(names []string) ([]places.Category, error) {
	if len(names) == 0 {
		names = places.DefaultCategoryKeys
	}
	categories := make([]places.Category, 0, len(names))
	for _, name := range names {
		c, err := places.LookupCategory(name)
		if err != nil {
			return nil, fmt.Errorf("service: %q: %w", name, err)
		}
		categories = append(categories, c)
	}
	return categories, nil
}
