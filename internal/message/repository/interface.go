package repository

import (
	"context"

	"chat-api/internal/model"
	"chat-api/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	// GetOrCreateConversation returns the conversation between two users,
	// creating it on first contact. Participant order does not matter.
	GetOrCreateConversation(ctx context.Context, sc model.Scope, userA, userB string) (model.Conversation, error)

	// GetConversation returns the conversation between two users, or
	// ErrNotFound if they never talked.
	GetConversation(ctx context.Context, sc model.Scope, userA, userB string) (model.Conversation, error)

	// ListConversations returns every conversation the user participates in,
	// most recently active first.
	ListConversations(ctx context.Context, sc model.Scope, userID string) ([]model.Conversation, error)

	// CreateMessage persists a message and bumps its conversation's
	// updated_at.
	CreateMessage(ctx context.Context, sc model.Scope, opts CreateMessageOptions) (model.Message, error)

	// GetMessage returns one message by id.
	GetMessage(ctx context.Context, sc model.Scope, id string) (model.Message, error)

	// ListMessages returns a page of a conversation's messages, newest
	// first.
	ListMessages(ctx context.Context, sc model.Scope, opts ListMessagesOptions) ([]model.Message, paginator.Paginator, error)

	// LastMessages returns the newest message of each given conversation.
	LastMessages(ctx context.Context, sc model.Scope, conversationIDs []string) (map[string]model.Message, error)
}
