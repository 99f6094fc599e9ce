package user

import (
	"context"

	"chat-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Auth
	Register(ctx context.Context, ip RegisterInput) (AuthOutput, error)
	Login(ctx context.Context, ip LoginInput) (AuthOutput, error)

	// Profile
	DetailMe(ctx context.Context, sc model.Scope) (UserOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (UserOutput, error)
	UpdateProfile(ctx context.Context, sc model.Scope, ip UpdateProfileInput) (UserOutput, error)
	Delete(ctx context.Context, sc model.Scope) error

	// Directory
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetUserOutput, error)
	GetOne(ctx context.Context, sc model.Scope, ip GetOneInput) (model.User, error)
}
