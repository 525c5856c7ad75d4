package handler

import (
	"net/http"

	"evcharge-dashboard/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func internalError(c *gin.Context, err error) {
	log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func renderHTML(c *gin.Context, status int, render func(gin.ResponseWriter) error) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := render(c.Writer); err != nil {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("failed to render page")
		_ = c.Error(err)
	}
}

func errorPage(c *gin.Context, status int, message string) {
	renderHTML(c, status, func(w gin.ResponseWriter) error {
		return views.RenderError(w, &views.ErrorPage{
			Layout:  views.Layout{Title: "⚠️ 오류", Path: c.Request.URL.Path},
			Status:  status,
			Message: message,
		})
	})
}
