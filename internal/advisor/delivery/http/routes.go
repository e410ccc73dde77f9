package http

import (
	"github.com/gin-gonic/gin"

	"financial-agent/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())

	rg.POST("/chat", h.Chat)
	rg.POST("/analyze/:ticker", h.AnalyzeStock)
	rg.POST("/compare", h.Compare)
	rg.POST("/portfolio/analyze", h.AnalyzePortfolio)
	rg.GET("/financial-data/:ticker", h.FinancialData)

	history := rg.Group("/conversation-history")
	{
		history.GET("/:session_id", h.History)
		history.DELETE("/:session_id", h.ClearHistory)
	}

	watchlist := rg.Group("/watchlist")
	{
		watchlist.POST("/chat", h.WatchlistChat)
		watchlist.GET("/chat-sessions", h.WatchlistSessions)
		watchlist.DELETE("/chat-sessions/:session_id", h.DeleteSession)
	}
}
