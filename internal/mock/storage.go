package mock

import (
	"context"
	"fmt"
	"time"
)

// Storage implements port.Storage for tests. Every successful call returns a
// distinct URL, as a real signer would.
type Storage struct {
	// captured inputs
	ObjectKey   string
	ContentType string
	TTL         time.Duration

	// errors
	GenerateUploadLinkErr   error
	GenerateDownloadLinkErr error

	// call counters
	GenerateUploadLinkCalls   int
	GenerateDownloadLinkCalls int
}

func (m *Storage) GeneratePresignedUploadURL(ctx context.Context, fileKey, contentType string, expiry time.Duration) (string, error) {
	m.GenerateUploadLinkCalls++
	m.ObjectKey = fileKey
	m.ContentType = contentType
	m.TTL = expiry
	if m.GenerateUploadLinkErr != nil {
		return "", m.GenerateUploadLinkErr
	}
	return fmt.Sprintf("https://example.com/upload?sig=%d", m.GenerateUploadLinkCalls), nil
}

func (m *Storage) GeneratePresignedDownloadURL(ctx context.Context, fileKey string, expiry time.Duration) (string, error) {
	m.GenerateDownloadLinkCalls++
	m.ObjectKey = fileKey
	m.TTL = expiry
	if m.GenerateDownloadLinkErr != nil {
		return "", m.GenerateDownloadLinkErr
	}
	return fmt.Sprintf("https://example.com/download?sig=%d", m.GenerateDownloadLinkCalls), nil
}
