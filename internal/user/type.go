package user

import (
	"chat-api/internal/model"
	"chat-api/pkg/paginator"
)

type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	FullName        string
	Gender          string
}

type LoginInput struct {
	// Login matches either username or email.
	Login    string
	Password string
}

type UpdateProfileInput struct {
	FullName  *string
	Email     *string
	Gender    *string
	AvatarURL *string
}

type AuthOutput struct {
	Token string
	User  model.User
}

type UserOutput struct {
	User model.User
}

type GetUserOutput struct {
	Users     []model.User
	Paginator paginator.Paginator
}

type GetOneInput struct {
	ID       string
	Username string
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type Filter struct {
	IDs    []string
	Search string
}
