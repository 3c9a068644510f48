package mock

import (
	"context"

	"github.com/fhuszti/r2-uploader-go/internal/port"
)

// RateLimiter implements port.RateLimiter for tests.
type RateLimiter struct {
	Out port.RateDecision
	Err error

	Calls   int
	GotKeys []string
}

func (m *RateLimiter) Allow(ctx context.Context, key string) (port.RateDecision, error) {
	m.Calls++
	m.GotKeys = append(m.GotKeys, key)
	return m.Out, m.Err
}
