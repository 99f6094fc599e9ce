package redis

import (
	"context"
	"fmt"
	"sync"

	"chat-api/config"
	pkgredis "chat-api/pkg/redis"
)

var (
	instance *pkgredis.Client
	mu       sync.RWMutex
)

// Connect initializes the Redis client. Returns the existing instance if
// already connected.
func Connect(ctx context.Context, cfg config.RedisConfig) (*pkgredis.Client, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := pkgredis.NewClient(pkgredis.Config{
		Host:            cfg.Host,
		Port:            cfg.Port,
		Password:        cfg.Password,
		DB:              cfg.DB,
		UseTLS:          cfg.UseTLS,
		MaxRetries:      cfg.MaxRetries,
		MinIdleConns:    cfg.MinIdleConns,
		PoolSize:        cfg.PoolSize,
		PoolTimeout:     cfg.PoolTimeout,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	instance = client
	return instance, nil
}

// GetClient returns the singleton Redis client instance.
// Panics if Connect has not been called successfully.
func GetClient() *pkgredis.Client {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("Redis client not initialized. Call Connect() first")
	}
	return instance
}

// Disconnect closes the Redis connection and resets the singleton.
func Disconnect(client *pkgredis.Client) error {
	mu.Lock()
	defer mu.Unlock()

	if client != nil {
		if err := client.Close(); err != nil {
			return fmt.Errorf("failed to close Redis connection: %w", err)
		}
		instance = nil
	}
	return nil
}
