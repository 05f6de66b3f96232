package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Everything is read-only.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	recipes := rg.Group("/recipes")
	{
		recipes.GET("", h.List)
		recipes.GET("/facets", h.Facets)
		recipes.GET("/:id", h.Detail)
		recipes.GET("/:id/photo", h.Photo)
	}
}
