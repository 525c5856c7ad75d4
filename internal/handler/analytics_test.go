package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"evcharge-dashboard/internal/models"
	"evcharge-dashboard/internal/service"
	"evcharge-dashboard/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAnalyticsService is a mock implementation of the AnalyticsService interface
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Summary(ctx context.Context) ([]models.RegionSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.RegionSummary), args.Error(1)
}

func (m *MockAnalyticsService) Top(ctx context.Context, n int) ([]models.RegionSummary, error) {
	args := m.Called(ctx, n)
	return args.Get(0).([]models.RegionSummary), args.Error(1)
}

func (m *MockAnalyticsService) Bottom(ctx context.Context, n int) ([]models.RegionSummary, error) {
	args := m.Called(ctx, n)
	return args.Get(0).([]models.RegionSummary), args.Error(1)
}

func (m *MockAnalyticsService) Analytics(ctx context.Context) (*service.Analytics, error) {
	args := m.Called(ctx)
	a, _ := args.Get(0).(*service.Analytics)
	return a, args.Error(1)
}

var summaryRows = []models.RegionSummary{
	{Region: "부산", StationCount: 1, VehicleCount: 100, CoverageRate: 1},
	{Region: "서울", StationCount: 2, VehicleCount: 200, CoverageRate: 1},
}

func TestAnalyticsHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockRows       []models.RegionSummary
		mockError      error
		expectedStatus int
	}{
		{
			name:           "successful load",
			mockRows:       summaryRows,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "empty summary",
			mockRows:       []models.RegionSummary{},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "service error",
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockAnalyticsService)
			handler := NewAnalyticsHandler(mockSvc)
			mockSvc.On("Summary", mock.Anything).Return(tt.mockRows, tt.mockError)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil)

			handler.Summary(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.mockError != nil {
				assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
			} else {
				var got []models.RegionSummary
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, tt.mockRows, got)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestAnalyticsHandler_Ranked(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		method         string
		query          string
		expectedN      int
		mockError      error
		expectedStatus int
	}{
		{name: "top default size", method: "Top", expectedN: service.RankSize, expectedStatus: http.StatusOK},
		{name: "top explicit size", method: "Top", query: "n=3", expectedN: 3, expectedStatus: http.StatusOK},
		{name: "bottom default size", method: "Bottom", expectedN: service.RankSize, expectedStatus: http.StatusOK},
		{name: "bottom service error", method: "Bottom", query: "n=2", expectedN: 2, mockError: assert.AnError, expectedStatus: http.StatusInternalServerError},
		{name: "non numeric size", method: "Top", query: "n=abc", expectedStatus: http.StatusBadRequest},
		{name: "zero size", method: "Bottom", query: "n=0", expectedStatus: http.StatusBadRequest},
		{name: "negative size", method: "Top", query: "n=-4", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockAnalyticsService)
			handler := NewAnalyticsHandler(mockSvc)
			if tt.expectedN > 0 {
				mockSvc.On(tt.method, mock.Anything, tt.expectedN).Return(summaryRows, tt.mockError)
			}

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/summary/x?"+tt.query, nil)

			if tt.method == "Top" {
				handler.Top(c)
			} else {
				handler.Bottom(c)
			}

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockSvc.AssertExpectations(t)
			if tt.expectedN == 0 {
				mockSvc.AssertNotCalled(t, tt.method, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestAnalyticsHandler_Page(t *testing.T) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, views.LoadTemplates())

	t.Run("renders charts and tables", func(t *testing.T) {
		mockSvc := new(MockAnalyticsService)
		mockSvc.On("Analytics", mock.Anything).Return(&service.Analytics{
			Year:    2025,
			Regions: summaryRows,
			Top:     summaryRows,
			Bottom:  summaryRows,
			Ranked:  summaryRows,
		}, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/analytics", nil)

		NewAnalyticsHandler(mockSvc).Page(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "부산")
		assert.Contains(t, w.Body.String(), "서울")
	})

	t.Run("load failure renders error page", func(t *testing.T) {
		mockSvc := new(MockAnalyticsService)
		mockSvc.On("Analytics", mock.Anything).Return(nil, assert.AnError)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/analytics", nil)

		NewAnalyticsHandler(mockSvc).Page(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "데이터를 불러오지 못했습니다.")
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})
}
