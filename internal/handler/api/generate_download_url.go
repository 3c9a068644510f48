package api

import (
	"errors"
	"net/http"

	"github.com/fhuszti/r2-uploader-go/internal/logger"
	"github.com/fhuszti/r2-uploader-go/internal/port"
	"github.com/fhuszti/r2-uploader-go/internal/usecase/upload"
	"github.com/fhuszti/r2-uploader-go/internal/validation"
)

type GenerateDownloadURLRequest struct {
	Filename string `json:"filename" validate:"required"`
}

type GenerateDownloadURLResponse struct {
	Success      bool   `json:"success"`
	PresignedURL string `json:"presignedUrl"`
	Filename     string `json:"filename"`
	Message      string `json:"message"`
}

func GenerateDownloadURLHandler(svc port.LinkIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateDownloadURLRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if errs := validation.ValidateStruct(req); errs != nil {
			WriteValidationError(w, r, errs)
			return
		}

		out, err := svc.GenerateDownloadLink(r.Context(), port.GenerateDownloadLinkInput(req))
		if errors.Is(err, upload.ErrFilenameRequired) {
			WriteError(w, r, http.StatusBadRequest, "Filename is required", nil)
			return
		}
		if err != nil {
			WriteUpstreamError(w, r, "Failed to generate download URL", err)
			return
		}

		RespondJSON(w, r, http.StatusOK, GenerateDownloadURLResponse{
			Success:      true,
			PresignedURL: out.PresignedURL,
			Filename:     out.Filename,
			Message:      "Download URL generated successfully",
		})
		logger.Infof(r.Context(), "✅  Successfully generated download URL for %q", out.Filename)
	}
}
