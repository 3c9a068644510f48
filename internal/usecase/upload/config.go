package upload

import "time"

const (
	// PresignExpiry is the lifetime of every presigned URL handed out.
	PresignExpiry = time.Hour

	DefaultContentType = "application/octet-stream"
)

func contentTypeOrDefault(ct string) string {
	if ct == "" {
		return DefaultContentType
	}
	return ct
}
