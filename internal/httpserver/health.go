package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chat-api/internal/realtime"
	"chat-api/pkg/errors"
	"chat-api/pkg/response"
)

// healthCheck reports the state of the server and its backing services.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(0, "database connection failed", http.StatusServiceUnavailable))
		return
	}

	redisStatus := "disabled"
	if srv.redis != nil {
		if err := srv.redis.Ping(ctx).Err(); err != nil {
			response.HttpError(c, errors.NewHTTPError(0, "redis connection failed", http.StatusServiceUnavailable))
			return
		}
		redisStatus = "connected"
	}

	stats, err := srv.realtimeUC.GetStats(ctx)
	if err != nil {
		stats = realtime.HubStats{}
	}

	response.OK(c, gin.H{
		"status":             "healthy",
		"service":            "chat-api",
		"active_connections": stats.ActiveConnections,
		"online_users":       stats.OnlineUsers,
		"database":           "connected",
		"redis":              redisStatus,
	})
}

// readyCheck reports whether the service is ready to take traffic.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(0, "database connection not available", http.StatusServiceUnavailable))
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": "chat-api",
	})
}

// liveCheck reports process liveness.
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": "chat-api",
	})
}
