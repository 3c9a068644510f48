package ratelimit

import (
	"context"

	"github.com/fhuszti/r2-uploader-go/internal/port"
)

// Noop lets every request through. It is used when no Redis address is set.
type Noop struct{}

var _ port.RateLimiter = (*Noop)(nil)

func (Noop) Allow(context.Context, string) (port.RateDecision, error) {
	return port.RateDecision{Allowed: true}, nil
}
