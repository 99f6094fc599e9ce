package realtime

import "errors"

var (
	// ErrInvalidToken is returned when the JWT token is invalid
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrMissingToken is returned when the JWT token is missing
	ErrMissingToken = errors.New("missing token")

	// ErrInvalidConnection is returned when Register receives anything other
	// than a websocket connection
	ErrInvalidConnection = errors.New("invalid connection type")

	// ErrMaxConnectionsReached is returned when the connection limit is hit
	ErrMaxConnectionsReached = errors.New("maximum connections reached")

	// ErrHubClosed is returned when registering on a hub that has shut down
	ErrHubClosed = errors.New("hub closed")
)
