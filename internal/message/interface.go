package message

import (
	"context"

	"chat-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Send persists a message, stores its attachment if any, and pushes a
	// message event to the sender's and receiver's live connections.
	Send(ctx context.Context, sc model.Scope, ip SendInput) (MessageOutput, error)

	// History returns the paginated message history with one peer, newest
	// first.
	History(ctx context.Context, sc model.Scope, ip HistoryInput) (HistoryOutput, error)

	// Conversations lists the caller's conversations with peer info and the
	// last message of each.
	Conversations(ctx context.Context, sc model.Scope) (ConversationsOutput, error)

	// DownloadAttachment streams a message's attachment. Only the two
	// participants may fetch it.
	DownloadAttachment(ctx context.Context, sc model.Scope, messageID string) (AttachmentOutput, error)
}
