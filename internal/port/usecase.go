package port

import (
	"context"
	"time"
)

// LinkIssuer returns presigned links to upload or download a single object.
type LinkIssuer interface {
	GenerateUploadLink(ctx context.Context, in GenerateUploadLinkInput) (GenerateUploadLinkOutput, error)
	GenerateDownloadLink(ctx context.Context, in GenerateDownloadLinkInput) (GenerateDownloadLinkOutput, error)
}
type GenerateUploadLinkInput struct {
	Filename    string
	ContentType string
}
type GenerateUploadLinkOutput struct {
	PresignedURL string
	PublicURL    string
	Filename     string
}
type GenerateDownloadLinkInput struct {
	Filename string
}
type GenerateDownloadLinkOutput struct {
	PresignedURL string
	Filename     string
}

// RelayUploader pushes a buffered file to the object store on the client's behalf.
type RelayUploader interface {
	RelayUpload(ctx context.Context, in RelayUploadInput) (RelayUploadOutput, error)
}
type RelayUploadInput struct {
	Filename    string
	ContentType string
	Content     []byte
}
type RelayUploadOutput struct {
	PublicURL   string
	Filename    string
	Size        int64
	ContentType string
}

// HealthReporter reports liveness and which settings are configured.
type HealthReporter interface {
	Report(ctx context.Context) HealthReport
}
type HealthReport struct {
	Status      string
	Message     string
	Timestamp   time.Time
	Environment map[string]string
}
