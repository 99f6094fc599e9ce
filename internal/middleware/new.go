package middleware

import (
	"chat-api/config"
	"chat-api/pkg/log"
	"chat-api/pkg/scope"
)

type Middleware struct {
	l         log.Logger
	jwtMgr    scope.Manager
	cookieCfg config.CookieConfig
}

func New(l log.Logger, jwtMgr scope.Manager, cookieCfg config.CookieConfig) Middleware {
	return Middleware{
		l:         l,
		jwtMgr:    jwtMgr,
		cookieCfg: cookieCfg,
	}
}
