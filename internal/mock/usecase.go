package mock

import (
	"context"

	"github.com/fhuszti/r2-uploader-go/internal/port"
)

// LinkIssuer implements port.LinkIssuer for tests.
type LinkIssuer struct {
	UploadOut   port.GenerateUploadLinkOutput
	DownloadOut port.GenerateDownloadLinkOutput
	UploadErr   error
	DownloadErr error

	UploadCalled   bool
	DownloadCalled bool
	GotUploadIn    port.GenerateUploadLinkInput
	GotDownloadIn  port.GenerateDownloadLinkInput
}

func (m *LinkIssuer) GenerateUploadLink(ctx context.Context, in port.GenerateUploadLinkInput) (port.GenerateUploadLinkOutput, error) {
	m.UploadCalled = true
	m.GotUploadIn = in
	return m.UploadOut, m.UploadErr
}

func (m *LinkIssuer) GenerateDownloadLink(ctx context.Context, in port.GenerateDownloadLinkInput) (port.GenerateDownloadLinkOutput, error) {
	m.DownloadCalled = true
	m.GotDownloadIn = in
	return m.DownloadOut, m.DownloadErr
}

// RelayUploader implements port.RelayUploader for tests.
type RelayUploader struct {
	Out port.RelayUploadOutput
	Err error

	Called bool
	GotIn  port.RelayUploadInput
}

func (m *RelayUploader) RelayUpload(ctx context.Context, in port.RelayUploadInput) (port.RelayUploadOutput, error) {
	m.Called = true
	m.GotIn = in
	return m.Out, m.Err
}

// HealthReporter implements port.HealthReporter for tests.
type HealthReporter struct {
	Out    port.HealthReport
	Called bool
}

func (m *HealthReporter) Report(ctx context.Context) port.HealthReport {
	m.Called = true
	return m.Out
}
