package redis

import (
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Config holds connection settings for a standalone Redis instance.
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
	UseTLS   bool

	// Connection pool settings
	MaxRetries      int
	MinIdleConns    int
	PoolSize        int
	PoolTimeout     time.Duration
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
}

// Client wraps goredis.Client with additional functionality.
type Client struct {
	*goredis.Client
	config Config
}
