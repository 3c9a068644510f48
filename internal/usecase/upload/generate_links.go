package upload

import (
	"context"

	"github.com/fhuszti/r2-uploader-go/internal/port"
)

type linkIssuerSrv struct {
	strg       port.Storage
	publicBase string
}

// compile-time check: *linkIssuerSrv must satisfy port.LinkIssuer
var _ port.LinkIssuer = (*linkIssuerSrv)(nil)

func NewLinkIssuer(strg port.Storage, publicBase string) port.LinkIssuer {
	return &linkIssuerSrv{strg: strg, publicBase: publicBase}
}

func (s *linkIssuerSrv) GenerateUploadLink(ctx context.Context, in port.GenerateUploadLinkInput) (port.GenerateUploadLinkOutput, error) {
	if in.Filename == "" {
		return port.GenerateUploadLinkOutput{}, ErrFilenameRequired
	}

	presigned, err := s.strg.GeneratePresignedUploadURL(ctx, in.Filename, contentTypeOrDefault(in.ContentType), PresignExpiry)
	if err != nil {
		return port.GenerateUploadLinkOutput{}, err
	}

	return port.GenerateUploadLinkOutput{
		PresignedURL: presigned,
		PublicURL:    PublicURL(s.publicBase, in.Filename),
		Filename:     in.Filename,
	}, nil
}

// GenerateDownloadLink does not check that the object exists; a missing
// object only surfaces as a 404 when the link is used.
func (s *linkIssuerSrv) GenerateDownloadLink(ctx context.Context, in port.GenerateDownloadLinkInput) (port.GenerateDownloadLinkOutput, error) {
	if in.Filename == "" {
		return port.GenerateDownloadLinkOutput{}, ErrFilenameRequired
	}

	presigned, err := s.strg.GeneratePresignedDownloadURL(ctx, in.Filename, PresignExpiry)
	if err != nil {
		return port.GenerateDownloadLinkOutput{}, err
	}

	return port.GenerateDownloadLinkOutput{
		PresignedURL: presigned,
		Filename:     in.Filename,
	}, nil
}
