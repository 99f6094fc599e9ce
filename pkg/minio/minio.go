package minio

import (
	"context"
	"fmt"
	"io"
	"time"

	miniogo "github.com/minio/minio-go/v7"
)

// Connect establishes the connection and verifies it by listing buckets.
func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.minioClient.ListBuckets(ctx)
	if err != nil {
		m.connected = false
		return handleMinIOError(err, "connect")
	}

	m.connected = true
	return nil
}

// HealthCheck verifies the connection is still healthy.
func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.connected {
		return fmt.Errorf("%w: not connected", ErrConnectionFailed)
	}

	_, err := m.minioClient.ListBuckets(ctx)
	if err != nil {
		return handleMinIOError(err, "health_check")
	}

	return nil
}

// Close marks the client as disconnected.
func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.connected = false
	return nil
}

// EnsureBucket creates the bucket if it does not exist yet.
func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	if err := validateBucketName(bucketName); err != nil {
		return err
	}

	exists, err := m.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return handleMinIOError(err, "bucket_exists")
	}
	if exists {
		return nil
	}

	if err := m.minioClient.MakeBucket(ctx, bucketName, miniogo.MakeBucketOptions{Region: m.config.Region}); err != nil {
		return handleMinIOError(err, "make_bucket")
	}
	return nil
}

// UploadFile uploads an object.
func (m *implMinIO) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	if err := validateBucketName(req.BucketName); err != nil {
		return nil, err
	}

	opts := miniogo.PutObjectOptions{
		ContentType:  req.ContentType,
		UserMetadata: req.Metadata,
	}

	info, err := m.minioClient.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, opts)
	if err != nil {
		return nil, handleMinIOError(err, "upload")
	}

	return &FileInfo{
		BucketName:   req.BucketName,
		ObjectName:   req.ObjectName,
		OriginalName: req.OriginalName,
		Size:         info.Size,
		ContentType:  req.ContentType,
		ETag:         info.ETag,
		LastModified: time.Now(),
		Metadata:     req.Metadata,
	}, nil
}

// DownloadFile downloads an object and returns its stream plus headers.
func (m *implMinIO) DownloadFile(ctx context.Context, req *DownloadRequest) (io.ReadCloser, *DownloadHeaders, error) {
	obj, err := m.minioClient.GetObject(ctx, req.BucketName, req.ObjectName, miniogo.GetObjectOptions{})
	if err != nil {
		return nil, nil, handleMinIOError(err, "download")
	}

	stat, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		return nil, nil, handleMinIOError(err, "stat")
	}

	headers := &DownloadHeaders{
		ContentType:   stat.ContentType,
		ContentLength: stat.Size,
		LastModified:  stat.LastModified.UTC().Format("Mon, 02 Jan 2006 15:04:05 GMT"),
		ETag:          stat.ETag,
	}

	return obj, headers, nil
}

// DeleteFile removes an object.
func (m *implMinIO) DeleteFile(ctx context.Context, bucketName, objectName string) error {
	if err := m.minioClient.RemoveObject(ctx, bucketName, objectName, miniogo.RemoveObjectOptions{}); err != nil {
		return handleMinIOError(err, "delete")
	}
	return nil
}

// GetPresignedDownloadURL generates a presigned GET URL.
func (m *implMinIO) GetPresignedDownloadURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (*PresignedURLResponse, error) {
	u, err := m.minioClient.PresignedGetObject(ctx, bucketName, objectName, expiry, nil)
	if err != nil {
		return nil, handleMinIOError(err, "presign")
	}

	return &PresignedURLResponse{
		URL:       u.String(),
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}
