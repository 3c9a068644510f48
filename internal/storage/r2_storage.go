package storage

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fhuszti/r2-uploader-go/internal/port"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// r2Region is the only region R2 accepts. Setting it up front also keeps
// presigning offline: minio skips its bucket location lookup.
const r2Region = "auto"

type R2Storage struct {
	client     minioClient
	bucketName string
}

// compile-time check: *R2Storage must satisfy port.Storage
var _ port.Storage = (*R2Storage)(nil)

// NewR2Storage builds a client for an S3-compatible endpoint such as
// https://<account>.r2.cloudflarestorage.com. No request is sent.
func NewR2Storage(endpoint, accessKey, secretKey, bucket string) (*R2Storage, error) {
	log.Println("initialising R2 client...")
	host, secure, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	if bucket == "" {
		return nil, errors.New("bucket name is empty")
	}

	// path-style: account hosts do not serve bucket subdomains
	client, err := minio.New(host, &minio.Options{
		Creds:        credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure:       secure,
		Region:       r2Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	return &R2Storage{client: client, bucketName: bucket}, nil
}

// parseEndpoint accepts either a bare host or a URL. Plain http is only
// honoured when spelled out.
func parseEndpoint(endpoint string) (host string, secure bool, err error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return "", false, errors.New("storage endpoint is empty")
	}
	if !strings.Contains(endpoint, "://") {
		return strings.TrimRight(endpoint, "/"), true, nil
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return "", false, err
	}
	if u.Host == "" {
		return "", false, errors.New("storage endpoint has no host")
	}
	switch u.Scheme {
	case "https":
		return u.Host, true, nil
	case "http":
		return u.Host, false, nil
	default:
		return "", false, errors.New("storage endpoint scheme must be http or https")
	}
}

// GeneratePresignedUploadURL signs a PUT that is bound to the given content
// type: the uploader must send the same Content-Type header.
func (s *R2Storage) GeneratePresignedUploadURL(ctx context.Context, fileKey, contentType string, expiry time.Duration) (string, error) {
	log.Printf("generating a presigned upload link for file %q in bucket %q...", fileKey, s.bucketName)

	headers := http.Header{}
	headers.Set("Content-Type", contentType)
	presignedURL, err := s.client.PresignHeader(ctx, http.MethodPut, s.bucketName, fileKey, expiry, url.Values{}, headers)
	if err != nil {
		return "", mapMinioErr(err)
	}

	return presignedURL.String(), nil
}

func (s *R2Storage) GeneratePresignedDownloadURL(ctx context.Context, fileKey string, expiry time.Duration) (string, error) {
	log.Printf("generating a presigned download link for file %q in bucket %q...", fileKey, s.bucketName)

	presignedURL, err := s.client.PresignedGetObject(ctx, s.bucketName, fileKey, expiry, url.Values{})
	if err != nil {
		return "", mapMinioErr(err)
	}

	return presignedURL.String(), nil
}
