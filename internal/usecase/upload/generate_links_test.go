package upload

import (
	"context"
	"errors"
	"testing"

	"github.com/fhuszti/r2-uploader-go/internal/mock"
	"github.com/fhuszti/r2-uploader-go/internal/port"
)

const testBase = "https://cdn.example.com"

func TestGenerateUploadLink_Success(t *testing.T) {
	strg := &mock.Storage{}
	svc := NewLinkIssuer(strg, testBase)

	in := port.GenerateUploadLinkInput{Filename: "my clip.mp4", ContentType: "video/mp4"}
	out, err := svc.GenerateUploadLink(context.Background(), in)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.PresignedURL != "https://example.com/upload?sig=1" {
		t.Errorf("PresignedURL = %q; want %q", out.PresignedURL, "https://example.com/upload?sig=1")
	}
	if out.PublicURL != testBase+"/my%20clip.mp4" {
		t.Errorf("PublicURL = %q; want %q", out.PublicURL, testBase+"/my%20clip.mp4")
	}
	if out.Filename != in.Filename {
		t.Errorf("Filename = %q; want %q", out.Filename, in.Filename)
	}

	if strg.GenerateUploadLinkCalls != 1 {
		t.Fatalf("expected 1 signing call, got %d", strg.GenerateUploadLinkCalls)
	}
	if strg.ObjectKey != in.Filename {
		t.Errorf("strg called with key %q, want %q", strg.ObjectKey, in.Filename)
	}
	if strg.ContentType != "video/mp4" {
		t.Errorf("strg called with content type %q, want %q", strg.ContentType, "video/mp4")
	}
	if strg.TTL != PresignExpiry {
		t.Errorf("strg called with TTL %v, want %v", strg.TTL, PresignExpiry)
	}
}

func TestGenerateUploadLink_DefaultContentType(t *testing.T) {
	strg := &mock.Storage{}
	svc := NewLinkIssuer(strg, testBase)

	if _, err := svc.GenerateUploadLink(context.Background(), port.GenerateUploadLinkInput{Filename: "blob"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if strg.ContentType != DefaultContentType {
		t.Errorf("content type = %q; want %q", strg.ContentType, DefaultContentType)
	}
}

func TestGenerateUploadLink_EmptyFilename(t *testing.T) {
	strg := &mock.Storage{}
	svc := NewLinkIssuer(strg, testBase)

	_, err := svc.GenerateUploadLink(context.Background(), port.GenerateUploadLinkInput{})
	if !errors.Is(err, ErrFilenameRequired) {
		t.Fatalf("error = %v; want ErrFilenameRequired", err)
	}
	if strg.GenerateUploadLinkCalls != 0 {
		t.Error("did not expect the signing dependency to be called")
	}
}

func TestGenerateUploadLink_StorageError(t *testing.T) {
	strg := &mock.Storage{GenerateUploadLinkErr: errors.New("strg failure")}
	svc := NewLinkIssuer(strg, testBase)

	out, err := svc.GenerateUploadLink(context.Background(), port.GenerateUploadLinkInput{Filename: "foo"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if out != (port.GenerateUploadLinkOutput{}) {
		t.Errorf("expected zero output, got %+v", out)
	}
}

func TestGenerateUploadLink_SameFilenameTwice(t *testing.T) {
	strg := &mock.Storage{}
	svc := NewLinkIssuer(strg, testBase)
	in := port.GenerateUploadLinkInput{Filename: "été.mov", ContentType: "video/quicktime"}

	first, err := svc.GenerateUploadLink(context.Background(), in)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := svc.GenerateUploadLink(context.Background(), in)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if first.PresignedURL == second.PresignedURL {
		t.Errorf("expected two independently signed URLs, got %q twice", first.PresignedURL)
	}
	if first.PublicURL != second.PublicURL {
		t.Errorf("public URLs differ: %q vs %q", first.PublicURL, second.PublicURL)
	}
	if strg.GenerateUploadLinkCalls != 2 {
		t.Errorf("expected 2 signing calls, got %d", strg.GenerateUploadLinkCalls)
	}
}

func TestGenerateDownloadLink(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		strg := &mock.Storage{}
		svc := NewLinkIssuer(strg, testBase)

		out, err := svc.GenerateDownloadLink(context.Background(), port.GenerateDownloadLinkInput{Filename: "missing-or-not.bin"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out.PresignedURL != "https://example.com/download?sig=1" {
			t.Errorf("PresignedURL = %q", out.PresignedURL)
		}
		if out.Filename != "missing-or-not.bin" {
			t.Errorf("Filename = %q", out.Filename)
		}
		if strg.TTL != PresignExpiry {
			t.Errorf("TTL = %v; want %v", strg.TTL, PresignExpiry)
		}
		if strg.GenerateUploadLinkCalls != 0 {
			t.Error("upload signing should not be used for downloads")
		}
	})

	t.Run("empty filename", func(t *testing.T) {
		strg := &mock.Storage{}
		svc := NewLinkIssuer(strg, testBase)

		_, err := svc.GenerateDownloadLink(context.Background(), port.GenerateDownloadLinkInput{})
		if !errors.Is(err, ErrFilenameRequired) {
			t.Fatalf("error = %v; want ErrFilenameRequired", err)
		}
		if strg.GenerateDownloadLinkCalls != 0 {
			t.Error("did not expect the signing dependency to be called")
		}
	})

	t.Run("storage error", func(t *testing.T) {
		strg := &mock.Storage{GenerateDownloadLinkErr: ErrUnauthorized}
		svc := NewLinkIssuer(strg, testBase)

		_, err := svc.GenerateDownloadLink(context.Background(), port.GenerateDownloadLinkInput{Filename: "x"})
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("error = %v; want ErrUnauthorized", err)
		}
	})
}
