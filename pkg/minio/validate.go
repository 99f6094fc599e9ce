package minio

import (
	"fmt"
	"regexp"
)

var bucketNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9.-]{1,61}[a-z0-9]$`)

func validateConfig(cfg Config) error {
	if cfg.Endpoint == "" {
		return fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" {
		return fmt.Errorf("minio access key is required")
	}
	if cfg.SecretKey == "" {
		return fmt.Errorf("minio secret key is required")
	}
	return nil
}

func validateBucketName(name string) error {
	if !bucketNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidBucketName, name)
	}
	return nil
}
