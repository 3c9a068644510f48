package api

import (
	"errors"
	"net/http"

	"github.com/fhuszti/r2-uploader-go/internal/logger"
	"github.com/fhuszti/r2-uploader-go/internal/port"
	"github.com/fhuszti/r2-uploader-go/internal/usecase/upload"
	"github.com/fhuszti/r2-uploader-go/internal/validation"
)

type GenerateUploadURLRequest struct {
	Filename    string `json:"filename" validate:"required"`
	ContentType string `json:"contentType,omitempty"`
}

type GenerateUploadURLResponse struct {
	Success      bool   `json:"success"`
	PresignedURL string `json:"presignedUrl"`
	PublicURL    string `json:"publicUrl"`
	Filename     string `json:"filename"`
	Message      string `json:"message"`
}

func GenerateUploadURLHandler(svc port.LinkIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateUploadURLRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if errs := validation.ValidateStruct(req); errs != nil {
			WriteValidationError(w, r, errs)
			return
		}

		out, err := svc.GenerateUploadLink(r.Context(), port.GenerateUploadLinkInput(req))
		if errors.Is(err, upload.ErrFilenameRequired) {
			WriteError(w, r, http.StatusBadRequest, "Filename is required", nil)
			return
		}
		if err != nil {
			WriteUpstreamError(w, r, "Failed to generate presigned URL", err)
			return
		}

		RespondJSON(w, r, http.StatusOK, GenerateUploadURLResponse{
			Success:      true,
			PresignedURL: out.PresignedURL,
			PublicURL:    out.PublicURL,
			Filename:     out.Filename,
			Message:      "Presigned URL generated successfully",
		})
		logger.Infof(r.Context(), "✅  Successfully generated upload URL for %q", out.Filename)
	}
}
