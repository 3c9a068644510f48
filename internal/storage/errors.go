package storage

import (
	"fmt"

	"github.com/fhuszti/r2-uploader-go/internal/usecase/upload"
	"github.com/minio/minio-go/v7"
)

// mapMinioErr keeps the upstream message after the sentinel, e.g.
// "storage: unauthorized: Access Denied.".
func mapMinioErr(err error) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey":
		return fmt.Errorf("%w: %v", upload.ErrObjectNotFound, err)
	case "NoSuchBucket":
		return fmt.Errorf("%w: %v", upload.ErrBucketNotFound, err)
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return fmt.Errorf("%w: %v", upload.ErrUnauthorized, err)
	default:
		return fmt.Errorf("%w: %v", upload.ErrInternal, err)
	}
}
