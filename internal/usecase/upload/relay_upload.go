package upload

import (
	"context"
	"fmt"

	"github.com/fhuszti/r2-uploader-go/internal/logger"
	"github.com/fhuszti/r2-uploader-go/internal/port"
)

type relayerSrv struct {
	strg       port.Storage
	putter     port.ObjectPutter
	publicBase string
}

// compile-time check: *relayerSrv must satisfy port.RelayUploader
var _ port.RelayUploader = (*relayerSrv)(nil)

func NewRelayer(strg port.Storage, putter port.ObjectPutter, publicBase string) port.RelayUploader {
	return &relayerSrv{strg: strg, putter: putter, publicBase: publicBase}
}

// RelayUpload presigns a PUT for the original filename, then performs it with
// the buffered content. Nothing is retried.
func (s *relayerSrv) RelayUpload(ctx context.Context, in port.RelayUploadInput) (port.RelayUploadOutput, error) {
	if in.Filename == "" {
		return port.RelayUploadOutput{}, ErrFilenameRequired
	}
	ct := contentTypeOrDefault(in.ContentType)

	presigned, err := s.strg.GeneratePresignedUploadURL(ctx, in.Filename, ct, PresignExpiry)
	if err != nil {
		return port.RelayUploadOutput{}, err
	}

	logger.Infof(ctx, "relaying %d bytes of %q to the object store...", len(in.Content), in.Filename)
	status, err := s.putter.Put(ctx, presigned, ct, in.Content)
	if err != nil {
		return port.RelayUploadOutput{}, fmt.Errorf("relay put: %w", err)
	}
	if status < 200 || status > 299 {
		return port.RelayUploadOutput{}, &UploadError{StatusCode: status}
	}

	return port.RelayUploadOutput{
		PublicURL:   PublicURL(s.publicBase, in.Filename),
		Filename:    in.Filename,
		Size:        int64(len(in.Content)),
		ContentType: ct,
	}, nil
}
