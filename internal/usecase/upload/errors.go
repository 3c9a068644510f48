package upload

import (
	"errors"
	"fmt"
)

var (
	ErrObjectNotFound     = errors.New("storage: object not found")
	ErrBucketNotFound     = errors.New("storage: bucket not found")
	ErrUnauthorized       = errors.New("storage: unauthorized")
	ErrInternal           = errors.New("storage: internal error")
	ErrStorageUnavailable = errors.New("storage: client unavailable")

	ErrFilenameRequired = errors.New("upload: filename is required")
	ErrUploadFailed     = errors.New("upload: relay put failed")
)

// UploadError reports a relay PUT answered with a non-2xx status.
type UploadError struct {
	StatusCode int
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("Upload to R2 failed with status: %d", e.StatusCode)
}

func (e *UploadError) Is(target error) bool {
	return target == ErrUploadFailed
}
