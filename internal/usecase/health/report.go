package health

import (
	"context"
	"time"

	"github.com/fhuszti/r2-uploader-go/internal/config"
	"github.com/fhuszti/r2-uploader-go/internal/port"
)

const (
	StatusOK = "ok"
	Message  = "R2 uploader is running"

	FlagSet     = "✓ Set"
	FlagMissing = "✗ Missing"
)

type reporterSrv struct {
	env map[string]string
	now func() time.Time
}

var _ port.HealthReporter = (*reporterSrv)(nil)

// NewReporter freezes the configuration flags at start-up. A nil clock
// defaults to time.Now.
func NewReporter(presence config.Presence, now func() time.Time) port.HealthReporter {
	if now == nil {
		now = time.Now
	}
	return &reporterSrv{
		env: map[string]string{
			"r2_endpoint":           flag(presence.R2Endpoint),
			"aws_access_key_id":     flag(presence.AccessKeyID),
			"aws_secret_access_key": flag(presence.SecretAccessKey),
			"r2_bucket":             flag(presence.Bucket),
			"r2_public_url":         flag(presence.PublicURL),
		},
		now: now,
	}
}

func flag(set bool) string {
	if set {
		return FlagSet
	}
	return FlagMissing
}

func (s *reporterSrv) Report(_ context.Context) port.HealthReport {
	env := make(map[string]string, len(s.env))
	for k, v := range s.env {
		env[k] = v
	}
	return port.HealthReport{
		Status:      StatusOK,
		Message:     Message,
		Timestamp:   s.now().UTC(),
		Environment: env,
	}
}
