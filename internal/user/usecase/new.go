package usecase

import (
	"chat-api/internal/user"
	"chat-api/internal/user/repository"
	pkgLog "chat-api/pkg/log"
	"chat-api/pkg/scope"
)

type usecase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	jwtMgr scope.Manager
}

func New(l pkgLog.Logger, repo repository.Repository, jwtMgr scope.Manager) user.UseCase {
	return &usecase{
		l:      l,
		repo:   repo,
		jwtMgr: jwtMgr,
	}
}
