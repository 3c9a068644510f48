package ratelimit

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fhuszti/r2-uploader-go/internal/port"
	"github.com/redis/go-redis/v9"
)

// Redis is a fixed-window counter shared by every instance pointing at the
// same server.
type Redis struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// compile-time check: *Redis must satisfy port.RateLimiter
var _ port.RateLimiter = (*Redis)(nil)

func NewRedis(addr, password string, limit int, window time.Duration) *Redis {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return newRedisWithClient(rdb, limit, window)
}

func newRedisWithClient(rdb *redis.Client, limit int, window time.Duration) *Redis {
	return &Redis{client: rdb, limit: limit, window: window}
}

func (r *Redis) Allow(ctx context.Context, key string) (port.RateDecision, error) {
	k := getLimitKey(key)

	count, err := r.client.Incr(ctx, k).Result()
	if err != nil {
		return port.RateDecision{}, fmt.Errorf("redis incr failed: %w", err)
	}
	if count == 1 {
		if err := r.client.PExpire(ctx, k, r.window).Err(); err != nil {
			return port.RateDecision{}, fmt.Errorf("redis pexpire failed: %w", err)
		}
	}

	ttl, err := r.client.PTTL(ctx, k).Result()
	if err != nil {
		return port.RateDecision{}, fmt.Errorf("redis pttl failed: %w", err)
	}
	if ttl < 0 {
		// counter survived without an expiry, start a fresh window
		log.Printf("rate limit key %q had no expiry, resetting its window...", k)
		if err := r.client.PExpire(ctx, k, r.window).Err(); err != nil {
			return port.RateDecision{}, fmt.Errorf("redis pexpire failed: %w", err)
		}
		ttl = r.window
	}

	remaining := r.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return port.RateDecision{
		Allowed:    int(count) <= r.limit,
		Limit:      r.limit,
		Remaining:  remaining,
		ResetAfter: ttl,
	}, nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

func getLimitKey(key string) string {
	return "ratelimit:" + key
}
