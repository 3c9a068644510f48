package port

import (
	"context"
	"time"
)

// RateDecision is the outcome of a single rate limiter check.
// A zero Limit means no limit is enforced.
type RateDecision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAfter time.Duration
}

// RateLimiter counts requests per key within a window.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (RateDecision, error)
}
