package api

import "net/http"

// PreflightHandler answers OPTIONS with an empty JSON object. CORS headers are
// added by the route's CORS middleware.
func PreflightHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondJSON(w, r, http.StatusOK, struct{}{})
	}
}
