package http

import (
	"github.com/gin-gonic/gin"

	"chat-api/internal/middleware"
)

// RegisterRoutes registers the message routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	messages := r.Group("/message", mw.Auth())
	{
		messages.GET("/conversations", h.Conversations)
		messages.GET("/attachment/:id", h.DownloadAttachment)
		messages.POST("/:id", h.Send)
		messages.GET("/:id/history", h.History)
	}
}
