package http

import (
	"chat-api/internal/message"
	pkgLog "chat-api/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc message.UseCase
}

func New(l pkgLog.Logger, uc message.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
