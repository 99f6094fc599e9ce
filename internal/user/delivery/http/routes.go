package http

import (
	"github.com/gin-gonic/gin"

	"chat-api/internal/middleware"
)

// RegisterRoutes registers the user routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	users := r.Group("/user")
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)
		users.POST("/logout", h.Logout)

		authed := users.Group("", mw.Auth())
		{
			authed.GET("", h.List)
			authed.GET("/profile", h.DetailMe)
			authed.PUT("/profile", h.UpdateProfile)
			authed.DELETE("/profile", h.Delete)
			authed.GET("/:id", h.Detail)
		}
	}
}
