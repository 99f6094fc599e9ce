package minio

import (
	"context"
	"fmt"
	"sync"

	"chat-api/config"
	pkgminio "chat-api/pkg/minio"
)

var (
	instance pkgminio.MinIO
	mu       sync.RWMutex
)

// Connect initializes the MinIO client, verifies connectivity and makes sure
// the attachment bucket exists. Returns the existing instance if already
// connected.
func Connect(ctx context.Context, cfg config.MinIOConfig) (pkgminio.MinIO, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := pkgminio.New(pkgminio.Config{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		UseSSL:    cfg.UseSSL,
		Region:    cfg.Region,
		Bucket:    cfg.Bucket,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}

	if err := client.EnsureBucket(ctx, cfg.Bucket); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket %q: %w", cfg.Bucket, err)
	}

	instance = client
	return instance, nil
}

// GetClient returns the singleton MinIO client instance.
// Panics if Connect has not been called successfully.
func GetClient() pkgminio.MinIO {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("MinIO client not initialized. Call Connect() first")
	}
	return instance
}

// Disconnect closes the MinIO client and resets the singleton.
func Disconnect(client pkgminio.MinIO) error {
	mu.Lock()
	defer mu.Unlock()

	if client != nil {
		if err := client.Close(); err != nil {
			return fmt.Errorf("failed to close MinIO client: %w", err)
		}
		instance = nil
	}
	return nil
}
