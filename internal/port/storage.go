package port

import (
	"context"
	"time"
)

// Storage mints presigned authorizations against the object store.
type Storage interface {
	GeneratePresignedUploadURL(ctx context.Context, fileKey, contentType string, expiry time.Duration) (string, error)
	GeneratePresignedDownloadURL(ctx context.Context, fileKey string, expiry time.Duration) (string, error)
}

// ObjectPutter performs a PUT of raw bytes to a presigned URL and reports the
// HTTP status returned by the object store.
type ObjectPutter interface {
	Put(ctx context.Context, presignedURL, contentType string, body []byte) (int, error)
}
