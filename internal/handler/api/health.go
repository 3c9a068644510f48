package api

import (
	"net/http"

	"github.com/fhuszti/r2-uploader-go/internal/port"
)

// timestampLayout mirrors ISO-8601 with milliseconds, e.g. 2024-05-01T10:30:00.000Z.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type HealthResponse struct {
	Status      string            `json:"status"`
	Message     string            `json:"message"`
	Timestamp   string            `json:"timestamp"`
	Environment map[string]string `json:"environment"`
}

func HealthHandler(svc port.HealthReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep := svc.Report(r.Context())
		RespondJSON(w, r, http.StatusOK, HealthResponse{
			Status:      rep.Status,
			Message:     rep.Message,
			Timestamp:   rep.Timestamp.UTC().Format(timestampLayout),
			Environment: rep.Environment,
		})
	}
}
