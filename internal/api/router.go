// Package api assembles the HTTP routes of the dashboard.
package api

import (
	"net/http"

	_ "evcharge-dashboard/docs"
	"evcharge-dashboard/internal/handler"
	"evcharge-dashboard/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups the handlers served by the router.
type Handlers struct {
	Analytics *handler.AnalyticsHandler
	Explore   *handler.ExploreHandler
	Cache     *handler.CacheHandler
}

// SetupRouter registers pages, the JSON API and Swagger UI.
func SetupRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/analytics")
	})
	r.GET("/analytics", h.Analytics.Page)
	r.GET("/explore", h.Explore.Page)
	r.POST("/refresh", h.Cache.RefreshPage)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/summary", h.Analytics.Summary)
		v1.GET("/summary/top", h.Analytics.Top)
		v1.GET("/summary/bottom", h.Analytics.Bottom)

		v1.GET("/regions/cities", h.Explore.Cities)
		v1.GET("/regions/districts", h.Explore.Districts)
		v1.GET("/stations", h.Explore.Stations)
		v1.GET("/stations/:id", h.Explore.Station)
		v1.GET("/stations/:id/nearby", h.Explore.Nearby)

		v1.POST("/cache/refresh", h.Cache.Refresh)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
