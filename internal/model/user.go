package model

import (
	"time"
)

// User represents a user entity in the domain layer.
// This is a safe type model that doesn't depend on database-specific types.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FullName     *string    `json:"full_name,omitempty"`
	Gender       *string    `json:"gender,omitempty"`
	AvatarURL    *string    `json:"avatar_url,omitempty"`
	PasswordHash *string    `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"-"`
}

// IsDeleted reports whether the user account has been soft-deleted.
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}
