package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrEmailTaken       = errors.New("email already taken")
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrFieldRequired    = errors.New("field required")
	ErrPasswordMismatch = errors.New("passwords do not match")
)
