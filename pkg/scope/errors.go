package scope

import "errors"

var (
	// ErrInvalidToken is returned when a token fails parsing or verification.
	ErrInvalidToken = errors.New("invalid token")
)
