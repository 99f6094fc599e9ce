package httpserver

import (
	messageHTTP "chat-api/internal/message/delivery/http"
	"chat-api/internal/middleware"
	realtimeHTTP "chat-api/internal/realtime/delivery/http"
	userHTTP "chat-api/internal/user/delivery/http"
)

const Api = "/api/v1"

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.logger))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	mw := middleware.New(srv.logger, srv.jwtMgr, srv.cookieCfg)
	api := srv.gin.Group(Api)

	userHTTP.New(srv.logger, srv.userUC, srv.cookieCfg).RegisterRoutes(api, mw)
	messageHTTP.New(srv.logger, srv.messageUC).RegisterRoutes(api, mw)
	realtimeHTTP.New(srv.realtimeUC, srv.jwtMgr, srv.logger, srv.wsConfig, srv.cookieCfg).RegisterRoutes(api, mw)

	return nil
}
