package repository

import (
	"errors"

	"chat-api/internal/model"
	"chat-api/pkg/paginator"
)

var ErrNotFound = errors.New("not found")

// Filter contains filtering options for user queries.
type Filter struct {
	IDs       []string
	Search    string // matches username or full_name
	ExcludeID string
}

// CreateOptions contains options for creating a user.
type CreateOptions struct {
	User model.User
}

// UpdateOptions contains options for updating a user.
type UpdateOptions struct {
	User model.User
}

// GetOneOptions contains options for getting a single user.
// Exactly one of the fields should be set.
type GetOneOptions struct {
	ID       string
	Username string
	Email    string
}

// ListOptions contains options for listing users.
type ListOptions struct {
	Filter Filter
}

// GetOptions contains options for paginated user listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}
