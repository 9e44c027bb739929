package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StoreChecker reports whether the backing store is reachable.
type StoreChecker interface {
	HealthCheck() bool
}

// HealthController handles health check endpoints.
type HealthController struct {
	store StoreChecker
}

// NewHealthController creates a new health controller instance.
func NewHealthController(store StoreChecker) *HealthController {
	return &HealthController{store: store}
}

// Check handles GET /health requests. It answers 503 when the database is
// unreachable so a dead store is distinguishable from a dead process.
func (c *HealthController) Check(ctx *gin.Context) {
	if !c.store.HealthCheck() {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "degraded",
			"database": "down",
		})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "up",
	})
}
