package redis

import (
	"context"
	"sync"

	goredis "github.com/redis/go-redis/v9"

	"chat-api/internal/realtime"
	"chat-api/pkg/log"
	pkgRedis "chat-api/pkg/redis"
)

// Subscriber forwards events published by other instances into the local hub.
type Subscriber interface {
	Start() error
	Shutdown(ctx context.Context) error
}

type subscriber struct {
	redis  *pkgRedis.Client
	uc     realtime.UseCase
	logger log.Logger

	pubsub *goredis.PubSub
	wg     sync.WaitGroup
	quit   chan struct{}
}

func New(redis *pkgRedis.Client, uc realtime.UseCase, logger log.Logger) Subscriber {
	return &subscriber{
		redis:  redis,
		uc:     uc,
		logger: logger,
		quit:   make(chan struct{}),
	}
}
