package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartinventory/internal/domain/inventory"
)

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	engine *inventory.Service
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(engine *inventory.Service) *HealthHandler {
	return &HealthHandler{engine: engine}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready handles readiness probe. The engine is in-memory, so readiness
// equals liveness once the seed has loaded.
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"checks": map[string]string{
			"engine": "healthy",
		},
	})
}

// Info returns application information.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	items, movements, version := h.engine.Snapshot()

	c.JSON(http.StatusOK, gin.H{
		"app":     "smartinventory",
		"version": "0.1.0",
		"engine": map[string]any{
			"items":         len(items),
			"movements":     len(movements),
			"state_version": version,
		},
	})
}
