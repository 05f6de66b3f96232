package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe-browser/internal/recipe"
	"recipe-browser/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Recipe Browser API V1"
	HealthVersion = "1.0.0"
	ServiceName   = "recipe-browser"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready only once the recipe collection is loaded.
// @Summary Readiness Check
// @Description Check if the recipe collection is loaded and the API can serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "Collection loading or failed"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	state := srv.recipeUC.State()
	body := gin.H{
		"status":  "ready",
		"state":   state,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}

	if state != recipe.StateLoaded {
		body["status"] = "not_ready"
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "Service Unavailable",
			Data:      body,
		})
		return
	}

	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
