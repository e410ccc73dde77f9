package http

import (
	"github.com/gin-gonic/gin"

	"financial-agent/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())
	rg.POST("", h.Add)
	rg.GET("", h.List)
	rg.DELETE("/:symbol", h.Remove)
}
