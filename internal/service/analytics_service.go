package service

import (
	"context"
	"fmt"

	"evcharge-dashboard/internal/cache"
	"evcharge-dashboard/internal/models"
	"evcharge-dashboard/internal/transform"
)

// RankSize is the number of regions in each of the top and bottom tables.
const RankSize = 5

// SummaryRepository interface for dependency injection
type SummaryRepository interface {
	LoadSummary(ctx context.Context, year int) ([]models.RegionSummary, error)
}

// AnalyticsService builds the aggregate coverage view
type AnalyticsService struct {
	repo  SummaryRepository
	cache *cache.Cache
	year  int
}

// Analytics is everything the analytics page renders.
type Analytics struct {
	Year    int                    `json:"year"`
	Regions []models.RegionSummary `json:"regions"`
	Top     []models.RegionSummary `json:"top"`
	Bottom  []models.RegionSummary `json:"bottom"`
	Ranked  []models.RegionSummary `json:"ranked"`
}

// NewAnalyticsService creates a new analytics service for registrations of year
func NewAnalyticsService(repo SummaryRepository, c *cache.Cache, year int) *AnalyticsService {
	return &AnalyticsService{repo: repo, cache: c, year: year}
}

// Summary returns one row per region with its coverage ratio, memoized per year.
func (s *AnalyticsService) Summary(ctx context.Context) ([]models.RegionSummary, error) {
	rows, err := cache.Load(ctx, s.cache, cache.Key("summary", s.year), func(ctx context.Context) ([]models.RegionSummary, error) {
		rows, err := s.repo.LoadSummary(ctx, s.year)
		if err != nil {
			return nil, err
		}
		return transform.WithCoverage(rows), nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to load summary: %w", err)
	}
	return rows, nil
}

// Top returns the n regions with the highest coverage ratio
func (s *AnalyticsService) Top(ctx context.Context, n int) ([]models.RegionSummary, error) {
	rows, err := s.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return transform.RankByRatio(rows, n, true), nil
}

// Bottom returns the n regions with the lowest coverage ratio
func (s *AnalyticsService) Bottom(ctx context.Context, n int) ([]models.RegionSummary, error) {
	rows, err := s.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return transform.RankByRatio(rows, n, false), nil
}

// Analytics assembles the analytics page from a single summary load.
func (s *AnalyticsService) Analytics(ctx context.Context) (*Analytics, error) {
	rows, err := s.Summary(ctx)
	if err != nil {
		return nil, err
	}

	return &Analytics{
		Year:    s.year,
		Regions: rows,
		Top:     transform.RankByRatio(rows, RankSize, true),
		Bottom:  transform.RankByRatio(rows, RankSize, false),
		Ranked:  transform.SortByRatio(rows, true),
	}, nil
}
