package minio

import (
	"errors"
	"fmt"

	miniogo "github.com/minio/minio-go/v7"
)

var (
	// ErrObjectNotFound is returned when the requested object does not exist.
	ErrObjectNotFound = errors.New("minio: object not found")
	// ErrInvalidBucketName is returned when the bucket name fails validation.
	ErrInvalidBucketName = errors.New("minio: invalid bucket name")
	// ErrConnectionFailed is returned when the client cannot reach the server.
	ErrConnectionFailed = errors.New("minio: connection failed")
)

func handleMinIOError(err error, op string) error {
	if err == nil {
		return nil
	}
	resp := miniogo.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, op)
	}
	return fmt.Errorf("minio %s: %w", op, err)
}
