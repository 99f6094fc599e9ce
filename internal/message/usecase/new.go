package usecase

import (
	"chat-api/internal/message"
	"chat-api/internal/message/repository"
	"chat-api/internal/realtime"
	userRepo "chat-api/internal/user/repository"
	pkgLog "chat-api/pkg/log"
	pkgMinio "chat-api/pkg/minio"
)

type usecase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	userRepo userRepo.Repository
	storage  pkgMinio.MinIO
	bucket   string
	notifier realtime.Notifier
}

func New(
	l pkgLog.Logger,
	repo repository.Repository,
	userRepo userRepo.Repository,
	storage pkgMinio.MinIO,
	bucket string,
	notifier realtime.Notifier,
) message.UseCase {
	return &usecase{
		l:        l,
		repo:     repo,
		userRepo: userRepo,
		storage:  storage,
		bucket:   bucket,
		notifier: notifier,
	}
}
