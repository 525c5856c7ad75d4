package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Invalidator drops memoized loads.
type Invalidator interface {
	Invalidate(context.Context) error
}

// CacheHandler exposes the manual refresh action
type CacheHandler struct {
	cache Invalidator
}

// NewCacheHandler creates a new cache handler
func NewCacheHandler(cache Invalidator) *CacheHandler {
	return &CacheHandler{cache: cache}
}

// Refresh handles POST /api/v1/cache/refresh requests
//
//	@Summary	Drop cached summary and address loads
//	@Tags		cache
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/cache/refresh [post]
func (h *CacheHandler) Refresh(c *gin.Context) {
	if err := h.cache.Invalidate(c.Request.Context()); err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "refreshed"})
}

// RefreshPage handles POST /refresh from the sidebar button and redirects back.
func (h *CacheHandler) RefreshPage(c *gin.Context) {
	if err := h.cache.Invalidate(c.Request.Context()); err != nil {
		internalError(c, err)
		return
	}

	next := c.PostForm("next")
	// Only local paths; anything else could redirect off-site.
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		next = "/"
	}
	c.Redirect(http.StatusSeeOther, next)
}
