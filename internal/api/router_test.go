package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"evcharge-dashboard/internal/cache"
	"evcharge-dashboard/internal/handler"
	"evcharge-dashboard/internal/models"
	"evcharge-dashboard/internal/places"
	"evcharge-dashboard/internal/service"
	"evcharge-dashboard/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

type stubRepository struct {
	summaryCalls int
}

func (r *stubRepository) LoadSummary(context.Context, int) ([]models.RegionSummary, error) {
	r.summaryCalls++
	return []models.RegionSummary{
		{Region: "부산", StationCount: 1, VehicleCount: 100},
		{Region: "서울", StationCount: 2, VehicleCount: 200},
	}, nil
}

func (r *stubRepository) LoadAllAddresses(context.Context) ([]models.StationAddress, error) {
	return []models.StationAddress{
		{ID: "ME000001", Name: "강남역", Address: strPtr("서울특별시 강남구 역삼동"), Latitude: 37.49, Longitude: 127.02},
		{ID: "ME000002", Name: "해운대", Address: strPtr("부산광역시 해운대구 우동"), Latitude: 35.16, Longitude: 129.16},
	}, nil
}

func (r *stubRepository) LoadStationDetail(_ context.Context, id string) (*models.Station, error) {
	if id != "ME000001" {
		return nil, nil
	}
	return &models.Station{ID: id, Name: "강남역", Latitude: 37.49, Longitude: 127.02}, nil
}

type stubPlaces struct{}

func (stubPlaces) SearchNearby(context.Context, float64, float64, string, int) ([]places.Place, error) {
	return nil, errors.New("offline")
}

func newTestRouter(t *testing.T) (*gin.Engine, *stubRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, views.LoadTemplates())

	repo := &stubRepository{}
	c := cache.New(cache.NewMemoryStore())
	return SetupRouter(Handlers{
		Analytics: handler.NewAnalyticsHandler(service.NewAnalyticsService(repo, c, 2025)),
		Explore:   handler.NewExploreHandler(service.NewExploreService(repo, stubPlaces{}, c, places.DefaultRadius)),
		Cache:     handler.NewCacheHandler(c),
	}), repo
}

func serve(r http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestSetupRouter_routes(t *testing.T) {
	r, _ := newTestRouter(t)

	tests := []struct {
		method         string
		target         string
		expectedStatus int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/", http.StatusFound},
		{http.MethodGet, "/analytics", http.StatusOK},
		{http.MethodGet, "/explore", http.StatusOK},
		{http.MethodGet, "/explore?city=%EC%84%9C%EC%9A%B8%ED%8A%B9%EB%B3%84%EC%8B%9C&district=%EA%B0%95%EB%82%A8%EA%B5%AC&station=%EA%B0%95%EB%82%A8%EC%97%AD", http.StatusOK},
		{http.MethodGet, "/api/v1/summary", http.StatusOK},
		{http.MethodGet, "/api/v1/summary/top?n=1", http.StatusOK},
		{http.MethodGet, "/api/v1/summary/bottom?n=x", http.StatusBadRequest},
		{http.MethodGet, "/api/v1/regions/cities", http.StatusOK},
		{http.MethodGet, "/api/v1/regions/districts", http.StatusBadRequest},
		{http.MethodGet, "/api/v1/stations/ME000001", http.StatusOK},
		{http.MethodGet, "/api/v1/stations/ME999999", http.StatusNotFound},
		{http.MethodGet, "/api/v1/stations/ME000001/nearby?category=cafe", http.StatusOK},
		{http.MethodPost, "/api/v1/cache/refresh", http.StatusOK},
		{http.MethodGet, "/swagger/doc.json", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			w := serve(r, tt.method, tt.target)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestSetupRouter_refreshInvalidatesSummary(t *testing.T) {
	r, repo := newTestRouter(t)

	require.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/v1/summary").Code)
	require.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/analytics").Code)
	assert.Equal(t, 1, repo.summaryCalls)

	require.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/api/v1/cache/refresh").Code)
	require.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/v1/summary").Code)
	assert.Equal(t, 2, repo.summaryCalls)
}

func TestSetupRouter_nearbyWithoutPlaces(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(r, http.MethodGet, "/api/v1/stations/ME000001/nearby")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `"type":"충전소"`))
}
