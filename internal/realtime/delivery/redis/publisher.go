package redis

import (
	"context"
	"fmt"

	"chat-api/internal/model"
	"chat-api/internal/realtime"
	"chat-api/pkg/log"
	pkgRedis "chat-api/pkg/redis"
)

// Publisher fans message events out through Redis so every instance, not
// just the one that handled the HTTP request, can push to its local
// connections.
type Publisher struct {
	redis  *pkgRedis.Client
	logger log.Logger
}

var _ realtime.Notifier = &Publisher{}

func NewPublisher(redis *pkgRedis.Client, logger log.Logger) *Publisher {
	return &Publisher{
		redis:  redis,
		logger: logger,
	}
}

// NotifyMessage publishes an encoded message event to each recipient's
// channel. Publishing to a channel nobody subscribes to is a no-op on the
// Redis side, matching best-effort delivery.
func (p *Publisher) NotifyMessage(ctx context.Context, msg *model.Message, recipients []string) error {
	payload, err := realtime.EncodeEvent(realtime.EventTypeMessage, msg)
	if err != nil {
		return fmt.Errorf("encode message event: %w", err)
	}

	seen := make(map[string]bool, len(recipients))
	for _, userID := range recipients {
		if userID == "" || seen[userID] {
			continue
		}
		seen[userID] = true

		channel := fmt.Sprintf("chat:user:%s", userID)
		if err := p.redis.Publish(ctx, channel, payload).Err(); err != nil {
			// Delivery to the remaining recipients still proceeds.
			p.logger.Warnf(ctx, "publish to %s failed: %v", channel, err)
		}
	}
	return nil
}
