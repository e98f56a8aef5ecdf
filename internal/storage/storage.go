package storage

import (
	"context"
	"errors"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

var ErrStorageDisabled = errors.New("object storage is not configured")

// FileStorage defines the interface for object storage operations.
type FileStorage interface {
	// PutObject uploads body under objectKey, replacing any previous object.
	PutObject(ctx context.Context, objectKey string, contentType string, body []byte) error

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET requests
	// for downloading an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)
}

// Disabled is the FileStorage used when no bucket is configured. Every call
// fails with ErrStorageDisabled.
type Disabled struct{}

func (Disabled) PutObject(context.Context, string, string, []byte) error {
	return ErrStorageDisabled
}

func (Disabled) GeneratePresignedDownloadURL(context.Context, string, time.Duration) (string, error) {
	return "", ErrStorageDisabled
}
