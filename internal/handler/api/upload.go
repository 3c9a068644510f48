package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fhuszti/r2-uploader-go/internal/logger"
	"github.com/fhuszti/r2-uploader-go/internal/port"
)

// multipartMemory is how much of a form is held in memory before parts
// spill to temporary files.
const multipartMemory = 32 << 20

type UploadResponse struct {
	Success      bool   `json:"success"`
	VideoURL     string `json:"video_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Duration     string `json:"duration"`
	Message      string `json:"message"`
	Filename     string `json:"filename"`
	Size         int64  `json:"size"`
	Type         string `json:"type"`
}

// UploadHandler relays the multipart field "file" to the object store. The
// whole file is buffered, so bodies are capped at maxBytes.
func UploadHandler(svc port.RelayUploader, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > maxBytes {
			WriteError(w, r, http.StatusRequestEntityTooLarge, "File too large", fmt.Errorf("content length %d exceeds %d", r.ContentLength, maxBytes))
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			if isTooLarge(err) {
				WriteError(w, r, http.StatusRequestEntityTooLarge, "File too large", err)
				return
			}
			WriteError(w, r, http.StatusBadRequest, "No file uploaded", err)
			return
		}
		defer func() {
			if err := r.MultipartForm.RemoveAll(); err != nil {
				logger.Warnf(r.Context(), "could not remove multipart temp files: %v", err)
			}
		}()

		file, header, err := r.FormFile("file")
		if err != nil {
			WriteError(w, r, http.StatusBadRequest, "No file uploaded", err)
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			WriteError(w, r, http.StatusBadRequest, "Could not read uploaded file", err)
			return
		}

		out, err := svc.RelayUpload(r.Context(), port.RelayUploadInput{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Content:     content,
		})
		if err != nil {
			WriteError(w, r, http.StatusInternalServerError, err.Error(), nil)
			return
		}

		RespondJSON(w, r, http.StatusOK, UploadResponse{
			Success:  true,
			VideoURL: out.PublicURL,
			Message:  "File uploaded successfully",
			Filename: out.Filename,
			Size:     out.Size,
			Type:     out.ContentType,
		})
		logger.Infof(r.Context(), "✅  Successfully relayed %q (%d bytes)", out.Filename, out.Size)
	}
}

func isTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}
