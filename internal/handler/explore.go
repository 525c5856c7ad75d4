package handler

import (
	"context"
	"errors"
	"net/http"

	"evcharge-dashboard/internal/models"
	"evcharge-dashboard/internal/places"
	"evcharge-dashboard/internal/service"
	"evcharge-dashboard/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ExploreHandler serves the station drill-down page and its JSON API
type ExploreHandler struct {
	service ExploreService
}

// ExploreService interface for dependency injection
type ExploreService interface {
	Cities(context.Context) ([]string, error)
	Districts(context.Context, string) ([]string, error)
	Stations(context.Context, string, string) ([]models.StationAddress, error)
	StationDetail(context.Context, string) (*models.Station, error)
	Overlay(context.Context, *models.Station, []places.Category) []models.PlaceOfInterest
	Explore(context.Context, service.SelectionRequest, []places.Category) (*service.Exploration, error)
}

// NewExploreHandler creates a new explore handler
func NewExploreHandler(svc ExploreService) *ExploreHandler {
	return &ExploreHandler{service: svc}
}

// Cities handles GET /api/v1/regions/cities requests
//
//	@Summary	Cities parsed from station addresses
//	@Tags		explore
//	@Produce	json
//	@Success	200	{array}		string
//	@Failure	500	{object}	map[string]string
//	@Router		/regions/cities [get]
func (h *ExploreHandler) Cities(c *gin.Context) {
	cities, err := h.service.Cities(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, cities)
}

// Districts handles GET /api/v1/regions/districts requests
//
//	@Summary	Districts of a city
//	@Tags		explore
//	@Produce	json
//	@Param		city	query		string	true	"city"
//	@Success	200		{array}		string
//	@Failure	400		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/regions/districts [get]
func (h *ExploreHandler) Districts(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'city'"})
		return
	}

	districts, err := h.service.Districts(c.Request.Context(), city)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, districts)
}

// Stations handles GET /api/v1/stations requests
//
//	@Summary	Stations in a city district
//	@Tags		explore
//	@Produce	json
//	@Param		city		query		string	true	"city"
//	@Param		district	query		string	true	"district"
//	@Success	200			{array}		models.StationAddress
//	@Failure	400			{object}	map[string]string
//	@Failure	500			{object}	map[string]string
//	@Router		/stations [get]
func (h *ExploreHandler) Stations(c *gin.Context) {
	city := c.Query("city")
	district := c.Query("district")
	if city == "" || district == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'city' and 'district'"})
		return
	}

	stations, err := h.service.Stations(c.Request.Context(), city, district)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, stations)
}

// Station handles GET /api/v1/stations/:id requests
//
//	@Summary	Station detail
//	@Tags		explore
//	@Produce	json
//	@Param		id	path		string	true	"station id"
//	@Success	200	{object}	models.Station
//	@Failure	404	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/stations/{id} [get]
func (h *ExploreHandler) Station(c *gin.Context) {
	station, ok := h.loadStation(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, station)
}

// Nearby handles GET /api/v1/stations/:id/nearby requests
//
//	@Summary	Station point and nearby amenities for the overlay map
//	@Tags		explore
//	@Produce	json
//	@Param		id			path		string		true	"station id"
//	@Param		category	query		[]string	false	"cafe, restaurant or convenience"	collectionFormat(multi)
//	@Success	200			{array}		models.PlaceOfInterest
//	@Failure	400			{object}	map[string]string
//	@Failure	404			{object}	map[string]string
//	@Failure	500			{object}	map[string]string
//	@Router		/stations/{id}/nearby [get]
func (h *ExploreHandler) Nearby(c *gin.Context) {
	categories, err := service.ResolveCategories(c.QueryArray("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	station, ok := h.loadStation(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.service.Overlay(c.Request.Context(), station, categories))
}

func (h *ExploreHandler) loadStation(c *gin.Context) (*models.Station, bool) {
	station, err := h.service.StationDetail(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrStationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "station not found"})
		return nil, false
	}
	if err != nil {
		internalError(c, err)
		return nil, false
	}
	return station, true
}

// Page handles GET /explore requests
func (h *ExploreHandler) Page(c *gin.Context) {
	var categories []places.Category
	picked := c.QueryArray("category")
	// An empty pick from the page form means "no categories", not the default set.
	if len(picked) > 0 || c.Query("categories_set") == "" {
		var err error
		categories, err = service.ResolveCategories(picked)
		if err != nil {
			errorPage(c, http.StatusBadRequest, "알 수 없는 편의시설 종류입니다.")
			return
		}
	}

	req := service.SelectionRequest{
		City:     c.Query("city"),
		District: c.Query("district"),
		Station:  c.Query("station"),
	}

	exploration, err := h.service.Explore(c.Request.Context(), req, categories)
	if err != nil {
		log.Error().Err(err).Msg("failed to build explore page")
		errorPage(c, http.StatusInternalServerError, "데이터를 불러오지 못했습니다.")
		return
	}

	status := http.StatusOK
	if exploration.StationMissing {
		status = http.StatusNotFound
	}

	renderHTML(c, status, func(w gin.ResponseWriter) error {
		return views.RenderExplore(w, views.NewExplorePage(exploration))
	})
}
