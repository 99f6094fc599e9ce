package redis

import "errors"

var (
	// ErrHostRequired is returned when no host is configured.
	ErrHostRequired = errors.New("redis: host is required")
	// ErrInvalidPort is returned when the configured port is out of range.
	ErrInvalidPort = errors.New("redis: invalid port")
)
