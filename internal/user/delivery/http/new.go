package http

import (
	"chat-api/config"
	"chat-api/internal/user"
	pkgLog "chat-api/pkg/log"
)

type Handler struct {
	l         pkgLog.Logger
	uc        user.UseCase
	cookieCfg config.CookieConfig
}

func New(l pkgLog.Logger, uc user.UseCase, cookieCfg config.CookieConfig) *Handler {
	return &Handler{
		l:         l,
		uc:        uc,
		cookieCfg: cookieCfg,
	}
}
