package realtime

import (
	"context"

	"chat-api/internal/model"
)

// UseCase defines the business logic for the realtime domain: the connection
// hub, presence tracking and event fan-out to connected clients.
type UseCase interface {
	// Lifecycle
	Run()
	Shutdown(ctx context.Context) error

	// Connection Management
	Register(ctx context.Context, input ConnectionInput) error

	// Presence
	OnlineUsers(ctx context.Context) ([]string, error)
	IsOnline(ctx context.Context, userID string) (bool, error)

	// Stats
	GetStats(ctx context.Context) (HubStats, error)

	// Delivery
	// NotifyMessage pushes a stored message to every recipient's live
	// connections. Best effort: recipients without a connection are skipped.
	NotifyMessage(ctx context.Context, msg *model.Message, recipients []string) error

	// DeliverRaw pushes a pre-encoded event to all connections of one user.
	// Used by the Redis subscriber to forward events published by other
	// instances.
	DeliverRaw(ctx context.Context, userID string, payload []byte) error
}

// Notifier is the delivery surface the message domain depends on. It is
// implemented by the local hub and, when Redis fan-out is enabled, by the
// Redis publisher.
type Notifier interface {
	NotifyMessage(ctx context.Context, msg *model.Message, recipients []string) error
}
