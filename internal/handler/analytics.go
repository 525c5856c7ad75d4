package handler

import (
	"context"
	"net/http"
	"strconv"

	"evcharge-dashboard/internal/models"
	"evcharge-dashboard/internal/service"
	"evcharge-dashboard/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AnalyticsHandler serves the aggregate coverage page and its JSON API
type AnalyticsHandler struct {
	service AnalyticsService
}

// AnalyticsService interface for dependency injection
type AnalyticsService interface {
	Summary(context.Context) ([]models.RegionSummary, error)
	Top(context.Context, int) ([]models.RegionSummary, error)
	Bottom(context.Context, int) ([]models.RegionSummary, error)
	Analytics(context.Context) (*service.Analytics, error)
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(svc AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: svc}
}

// Summary handles GET /api/v1/summary requests
//
//	@Summary	Station count, registered vehicles and coverage ratio per region
//	@Tags		analytics
//	@Produce	json
//	@Success	200	{array}		models.RegionSummary
//	@Failure	500	{object}	map[string]string
//	@Router		/summary [get]
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	rows, err := h.service.Summary(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// Top handles GET /api/v1/summary/top requests
//
//	@Summary	Regions with the highest coverage ratio
//	@Tags		analytics
//	@Produce	json
//	@Param		n	query		int	false	"number of regions"	default(5)
//	@Success	200	{array}		models.RegionSummary
//	@Failure	400	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/summary/top [get]
func (h *AnalyticsHandler) Top(c *gin.Context) {
	h.ranked(c, h.service.Top)
}

// Bottom handles GET /api/v1/summary/bottom requests
//
//	@Summary	Regions with the lowest coverage ratio
//	@Tags		analytics
//	@Produce	json
//	@Param		n	query		int	false	"number of regions"	default(5)
//	@Success	200	{array}		models.RegionSummary
//	@Failure	400	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/summary/bottom [get]
func (h *AnalyticsHandler) Bottom(c *gin.Context) {
	h.ranked(c, h.service.Bottom)
}

func (h *AnalyticsHandler) ranked(c *gin.Context, rank func(context.Context, int) ([]models.RegionSummary, error)) {
	n, err := strconv.Atoi(c.DefaultQuery("n", strconv.Itoa(service.RankSize)))
	if err != nil || n <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'n' must be a positive integer"})
		return
	}

	rows, err := rank(c.Request.Context(), n)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// Page handles GET /analytics requests
func (h *AnalyticsHandler) Page(c *gin.Context) {
	analytics, err := h.service.Analytics(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to build analytics page")
		errorPage(c, http.StatusInternalServerError, "데이터를 불러오지 못했습니다.")
		return
	}

	renderHTML(c, http.StatusOK, func(w gin.ResponseWriter) error {
		return views.RenderAnalytics(w, views.NewAnalyticsPage(analytics))
	})
}
