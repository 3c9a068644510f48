package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fhuszti/r2-uploader-go/internal/handler/api"
	"github.com/fhuszti/r2-uploader-go/internal/logger"
	"github.com/fhuszti/r2-uploader-go/internal/port"
)

// WithRateLimit counts requests per client IP under the given scope. Limiter
// failures let the request through.
func WithRateLimit(limiter port.RateLimiter, scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := scope + ":" + clientIP(r)
			d, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.Warnf(r.Context(), "⚠️  rate limiter unavailable, letting %q through: %v", key, err)
				next.ServeHTTP(w, r)
				return
			}

			if d.Limit > 0 {
				reset := ceilSeconds(d.ResetAfter)
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
				w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
				w.Header().Set("X-RateLimit-Reset", strconv.Itoa(reset))
				if !d.Allowed {
					w.Header().Set("Retry-After", strconv.Itoa(reset))
					api.WriteError(w, r, http.StatusTooManyRequests, "limit exceeded", nil)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP expects chi's RealIP to have rewritten RemoteAddr when a proxy
// header is present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func ceilSeconds(d time.Duration) int {
	s := int(math.Ceil(d.Seconds()))
	if s < 1 {
		return 1
	}
	return s
}
