package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/fhuszti/r2-uploader-go/internal/port"
	"github.com/fhuszti/r2-uploader-go/internal/usecase/upload"
)

// Unavailable stands in for the object store when no client could be built
// at start-up, so the service still boots and reports its health.
type Unavailable struct {
	cause error
}

var _ port.Storage = (*Unavailable)(nil)

func NewUnavailable(cause error) *Unavailable {
	return &Unavailable{cause: cause}
}

func (u *Unavailable) err() error {
	return fmt.Errorf("%w: %w", upload.ErrStorageUnavailable, u.cause)
}

func (u *Unavailable) GeneratePresignedUploadURL(context.Context, string, string, time.Duration) (string, error) {
	return "", u.err()
}

func (u *Unavailable) GeneratePresignedDownloadURL(context.Context, string, time.Duration) (string, error) {
	return "", u.err()
}
