package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"financial-agent/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Financial research agent API v1"
	HealthVersion = "1.0.0"
	ServiceName   = "financial-agent"

	EnvironmentProduction = "production"

	readyTimeout = 2 * time.Second
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": srv.serviceName,
	})
}

// readyCheck reports ready once the watchlist database answers. Generation
// availability is informational: the service still serves data without it.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Dependency unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	if err := srv.watchlistDB.PingContext(ctx); err != nil {
		srv.l.Errorf(ctx, "httpserver.readyCheck: watchlist db: %v", err)
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "watchlist database unavailable",
		})
		return
	}

	generation := false
	if srv.generation != nil {
		generation = srv.generation.Available()
	}

	response.OK(c, gin.H{
		"status":     "ready",
		"message":    HealthMessage,
		"version":    HealthVersion,
		"service":    srv.serviceName,
		"generation": generation,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": srv.serviceName,
	})
}
