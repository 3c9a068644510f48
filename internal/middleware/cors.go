package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// WithCORS allows any origin to call a route with the given methods.
// Preflights are passed on so the route's OPTIONS handler writes the body.
// The allow headers are written on every response, with or without Origin.
func WithCORS(methods []string, headers ...string) func(http.Handler) http.Handler {
	allowedHeaders := append([]string{"Content-Type"}, headers...)
	negotiate := cors.Handler(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     methods,
		AllowedHeaders:     allowedHeaders,
		ExposedHeaders:     []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		OptionsPassthrough: true,
		MaxAge:             300,
	})

	allowMethods := strings.Join(methods, ", ")
	allowHeaders := strings.Join(allowedHeaders, ", ")

	return func(next http.Handler) http.Handler {
		// runs after negotiation so the route's verbs win over the echoed ones
		withHeaders := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Methods", allowMethods)
			h.Set("Access-Control-Allow-Headers", allowHeaders)
			next.ServeHTTP(w, r)
		})
		return negotiate(withHeaders)
	}
}
