package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger())
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	return r
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name          string
		target        string
		requestID     string
		expectedLevel string
		expectedPath  string
	}{
		{name: "success", target: "/ok?city=x", expectedLevel: "info", expectedPath: "/ok?city=x"},
		{name: "server error", target: "/fail", expectedLevel: "error", expectedPath: "/fail"},
		{name: "caller request id", target: "/ok", requestID: "abc-123", expectedLevel: "info", expectedPath: "/ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.requestID != "" {
				req.Header.Set(RequestIDHeader, tt.requestID)
			}
			w := httptest.NewRecorder()

			newRouter().ServeHTTP(w, req)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.expectedLevel, entry["level"])
			assert.Equal(t, tt.expectedPath, entry["path"])
			assert.Equal(t, http.MethodGet, entry["method"])

			id := w.Header().Get(RequestIDHeader)
			assert.Equal(t, id, entry["request_id"])
			if tt.requestID != "" {
				assert.Equal(t, tt.requestID, id)
			} else {
				_, err := uuid.Parse(id)
				assert.NoError(t, err)
			}
		})
	}
}
