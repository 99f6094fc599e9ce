package http

import (
	"chat-api/config"
	"chat-api/internal/realtime"
	"chat-api/pkg/log"
	"chat-api/pkg/scope"
)

type Handler struct {
	uc        realtime.UseCase
	jwtMgr    scope.Manager
	logger    log.Logger
	wsConfig  config.WebSocketConfig
	cookieCfg config.CookieConfig
}

func New(uc realtime.UseCase, jwtMgr scope.Manager, logger log.Logger, wsCfg config.WebSocketConfig, cookieCfg config.CookieConfig) *Handler {
	return &Handler{
		uc:        uc,
		jwtMgr:    jwtMgr,
		logger:    logger,
		wsConfig:  wsCfg,
		cookieCfg: cookieCfg,
	}
}
