package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/fhuszti/r2-uploader-go/internal/mock"
	"github.com/fhuszti/r2-uploader-go/internal/port"
	"github.com/fhuszti/r2-uploader-go/internal/usecase/upload"
)

// multipartBody builds a form with one file part. An empty field name
// produces a form with only a text field.
func multipartBody(t *testing.T, field, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if field == "" {
		if err := mw.WriteField("note", "no file here"); err != nil {
			t.Fatalf("write field: %v", err)
		}
	} else {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
		if contentType != "" {
			h.Set("Content-Type", contentType)
		}
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestUploadHandler_Success(t *testing.T) {
	content := bytes.Repeat([]byte("v"), 2048)
	svc := &mock.RelayUploader{Out: port.RelayUploadOutput{
		PublicURL:   "https://cdn.example.com/my%20clip.mp4",
		Filename:    "my clip.mp4",
		Size:        2048,
		ContentType: "video/mp4",
	}}

	body, ct := multipartBody(t, "file", "my clip.mp4", "video/mp4", content)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()

	UploadHandler(svc, 1<<20)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if !svc.Called {
		t.Fatal("expected the relay to be invoked")
	}
	if svc.GotIn.Filename != "my clip.mp4" || svc.GotIn.ContentType != "video/mp4" {
		t.Errorf("relay input = %q/%q", svc.GotIn.Filename, svc.GotIn.ContentType)
	}
	if !bytes.Equal(svc.GotIn.Content, content) {
		t.Error("relay received different bytes than uploaded")
	}

	var got UploadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := UploadResponse{
		Success:  true,
		VideoURL: "https://cdn.example.com/my%20clip.mp4",
		Message:  "File uploaded successfully",
		Filename: "my clip.mp4",
		Size:     2048,
		Type:     "video/mp4",
	}
	if got != want {
		t.Errorf("response = %+v; want %+v", got, want)
	}

	var raw map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &raw)
	for _, k := range []string{"thumbnail_url", "duration"} {
		if v, ok := raw[k]; !ok || v != "" {
			t.Errorf("%s = %v (present %v); want empty string", k, v, ok)
		}
	}
}

func TestUploadHandler_NoContentTypeOnPart(t *testing.T) {
	svc := &mock.RelayUploader{}
	body, ct := multipartBody(t, "file", "raw.bin", "", []byte("abc"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()

	UploadHandler(svc, 1<<20)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	if svc.GotIn.ContentType != "" {
		t.Errorf("content type = %q; the relay applies the default", svc.GotIn.ContentType)
	}
}

func TestUploadHandler_Failures(t *testing.T) {
	tests := []struct {
		name       string
		build      func(t *testing.T) (*bytes.Buffer, string)
		maxBytes   int64
		svcErr     error
		wantStatus int
		wantError  string
		wantCalled bool
	}{
		{
			name: "no file field",
			build: func(t *testing.T) (*bytes.Buffer, string) {
				return multipartBody(t, "", "", "", nil)
			},
			maxBytes:   1 << 20,
			wantStatus: http.StatusBadRequest,
			wantError:  "No file uploaded",
		},
		{
			name: "wrong field name",
			build: func(t *testing.T) (*bytes.Buffer, string) {
				return multipartBody(t, "upload", "a.txt", "text/plain", []byte("x"))
			},
			maxBytes:   1 << 20,
			wantStatus: http.StatusBadRequest,
			wantError:  "No file uploaded",
		},
		{
			name: "not multipart",
			build: func(t *testing.T) (*bytes.Buffer, string) {
				return bytes.NewBufferString(`{"filename":"a"}`), "application/json"
			},
			maxBytes:   1 << 20,
			wantStatus: http.StatusBadRequest,
			wantError:  "No file uploaded",
		},
		{
			name: "too large",
			build: func(t *testing.T) (*bytes.Buffer, string) {
				return multipartBody(t, "file", "big.bin", "application/octet-stream", bytes.Repeat([]byte("x"), 4096))
			},
			maxBytes:   1024,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantError:  "File too large",
		},
		{
			name: "relay rejected by object store",
			build: func(t *testing.T) (*bytes.Buffer, string) {
				return multipartBody(t, "file", "a.txt", "text/plain", []byte("x"))
			},
			maxBytes:   1 << 20,
			svcErr:     &upload.UploadError{StatusCode: http.StatusForbidden},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Upload to R2 failed with status: 403",
			wantCalled: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mock.RelayUploader{Err: tc.svcErr}
			body, ct := tc.build(t)
			req := httptest.NewRequest(http.MethodPost, "/upload", body)
			req.Header.Set("Content-Type", ct)
			rec := httptest.NewRecorder()

			UploadHandler(svc, tc.maxBytes)(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d (body %s)", rec.Code, tc.wantStatus, rec.Body.String())
			}
			if svc.Called != tc.wantCalled {
				t.Errorf("relay called = %v; want %v", svc.Called, tc.wantCalled)
			}
			assertErrorBody(t, rec, tc.wantError, nil)
			if strings.Contains(rec.Body.String(), "video_url") {
				t.Error("failure body must not carry a video_url")
			}
		})
	}
}
