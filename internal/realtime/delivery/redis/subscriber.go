package redis

import (
	"context"
	"fmt"
	"strings"

	goredis "github.com/redis/go-redis/v9"
)

// userChannelPattern matches the per-user event channels the publisher
// writes to, chat:user:{user_id}.
const userChannelPattern = "chat:user:*"

func (s *subscriber) Start() error {
	ctx := context.Background()

	s.pubsub = s.redis.PSubscribe(ctx, userChannelPattern)

	// Wait for confirmation that the subscription is created.
	if _, err := s.pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	s.wg.Add(1)
	go s.listen(ctx)

	s.logger.Infof(ctx, "redis subscriber started on pattern %s", userChannelPattern)
	return nil
}

func (s *subscriber) listen(ctx context.Context) {
	defer s.wg.Done()

	ch := s.pubsub.Channel()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				s.logger.Warnf(ctx, "redis pubsub channel closed")
				return
			}
			s.handleMessage(ctx, msg)
		case <-s.quit:
			return
		}
	}
}

// handleMessage forwards one published event to the hub. The payload is
// already a fully encoded event envelope, so it goes straight to the user's
// connections.
func (s *subscriber) handleMessage(ctx context.Context, msg *goredis.Message) {
	userID := strings.TrimPrefix(msg.Channel, "chat:user:")
	if userID == "" || userID == msg.Channel {
		s.logger.Warnf(ctx, "ignoring event on unexpected channel %s", msg.Channel)
		return
	}

	if err := s.uc.DeliverRaw(ctx, userID, []byte(msg.Payload)); err != nil {
		s.logger.Warnf(ctx, "deliver failed: channel=%s err=%v", msg.Channel, err)
	}
}

func (s *subscriber) Shutdown(ctx context.Context) error {
	close(s.quit)
	if s.pubsub != nil {
		if err := s.pubsub.Close(); err != nil {
			s.logger.Errorf(ctx, "failed to close pubsub: %v", err)
		}
	}
	s.wg.Wait()
	s.logger.Infof(ctx, "redis subscriber stopped")
	return nil
}
