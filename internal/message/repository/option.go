package repository

import (
	"errors"

	"chat-api/internal/model"
	"chat-api/pkg/paginator"
)

var ErrNotFound = errors.New("not found")

// CreateMessageOptions contains options for persisting a message.
type CreateMessageOptions struct {
	Message model.Message
}

// ListMessagesOptions contains options for paginated message history.
type ListMessagesOptions struct {
	ConversationID string
	PaginateQuery  paginator.PaginateQuery
}
