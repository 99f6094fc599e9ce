package http

import (
	"github.com/gin-gonic/gin"

	"chat-api/internal/middleware"
)

// RegisterRoutes registers the realtime routes.
// The upgrade endpoint handles authentication itself: a browser's WebSocket
// API cannot set custom headers, so the token arrives via query string or
// cookie instead of the standard auth middleware.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	ws := r.Group("/ws")
	{
		ws.GET("", h.HandleWebSocket)
	}

	presence := r.Group("/presence", mw.Auth())
	{
		presence.GET("/online", h.HandleOnlineUsers)
		presence.GET("/stats", h.HandleStats)
	}
}
