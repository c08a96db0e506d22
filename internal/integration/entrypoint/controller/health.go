// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a dependency answers.
type HealthChecker func(ctx context.Context) bool

// HealthController handles health check endpoints.
type HealthController struct {
	dataSource      string
	dataSourceCheck HealthChecker
	cacheCheck      HealthChecker // Nil when no cache is configured
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status     string `json:"status"`
	DataSource string `json:"data_source"`
	Upstream   string `json:"upstream"`
	Cache      string `json:"cache"`
	Timestamp  string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dataSource string, dataSourceCheck, cacheCheck HealthChecker) *HealthController {
	return &HealthController{
		dataSource:      dataSource,
		dataSourceCheck: dataSourceCheck,
		cacheCheck:      cacheCheck,
	}
}

// Check handles GET /health requests.
// The gateway is live even when its dependencies are not, so the status code
// is always 200 and the body tells which dependency is down.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	upstream := "disconnected"
	if h.dataSourceCheck != nil && h.dataSourceCheck(ctx) {
		upstream = "connected"
	}

	cache := "disabled"
	if h.cacheCheck != nil {
		cache = "disconnected"
		if h.cacheCheck(ctx) {
			cache = "connected"
		}
	}

	status := "ok"
	if upstream != "connected" {
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:     status,
		DataSource: h.dataSource,
		Upstream:   upstream,
		Cache:      cache,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}
