package minio

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
)

// MinIO defines the interface for object storage operations used by the
// attachment pipeline.
type MinIO interface {
	// Connect establishes a connection and verifies it is working.
	Connect(ctx context.Context) error

	// HealthCheck verifies the connection is still healthy.
	HealthCheck(ctx context.Context) error

	// Close marks the client as disconnected. The underlying client manages
	// its own connection pool, no explicit shutdown is required.
	Close() error

	// EnsureBucket creates the bucket if it does not exist yet.
	EnsureBucket(ctx context.Context, bucketName string) error

	// UploadFile uploads an object.
	UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error)

	// DownloadFile downloads an object and returns its stream plus headers.
	DownloadFile(ctx context.Context, req *DownloadRequest) (io.ReadCloser, *DownloadHeaders, error)

	// DeleteFile removes an object.
	DeleteFile(ctx context.Context, bucketName, objectName string) error

	// GetPresignedDownloadURL generates a presigned GET URL.
	GetPresignedDownloadURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (*PresignedURLResponse, error)
}

// implMinIO is the implementation of the MinIO interface.
type implMinIO struct {
	minioClient *miniogo.Client
	config      Config
	mu          sync.RWMutex
	connected   bool
}

// New creates a new MinIO client with the provided configuration.
func New(cfg Config) (MinIO, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	transport := &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
	}

	client, err := miniogo.New(cfg.Endpoint, &miniogo.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, err
	}

	return &implMinIO{
		minioClient: client,
		config:      cfg,
		connected:   false,
	}, nil
}
