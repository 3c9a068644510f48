package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWithCORS(t *testing.T) {
	nextCalled := false
	h := WithCORS([]string{http.MethodPost, http.MethodOptions}, "Authorization")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("preflight reaches the route", func(t *testing.T) {
		nextCalled = false
		req := httptest.NewRequest(http.MethodOptions, "/generate-upload-url", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type, Authorization")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if !nextCalled {
			t.Fatal("preflight should be passed to the route handler")
		}
		if rec.Header().Get("Access-Control-Allow-Origin") == "" {
			t.Error("missing Access-Control-Allow-Origin")
		}
		if m := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(m, http.MethodPost) {
			t.Errorf("Access-Control-Allow-Methods = %q; want POST", m)
		}
		if ah := strings.ToLower(rec.Header().Get("Access-Control-Allow-Headers")); !strings.Contains(ah, "content-type") {
			t.Errorf("Access-Control-Allow-Headers = %q; want Content-Type", ah)
		}
	})

	t.Run("actual request carries the origin header", func(t *testing.T) {
		nextCalled = false
		req := httptest.NewRequest(http.MethodPost, "/generate-upload-url", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if !nextCalled {
			t.Fatal("request should reach the route handler")
		}
		if rec.Header().Get("Access-Control-Allow-Origin") == "" {
			t.Error("missing Access-Control-Allow-Origin")
		}
	})
}

func TestWithCORS_HeadersWithoutOrigin(t *testing.T) {
	h := WithCORS([]string{http.MethodPost, http.MethodOptions}, "Authorization")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	tests := []struct {
		name   string
		method string
		origin string
	}{
		{"error response without origin", http.MethodPost, ""},
		{"error response with origin", http.MethodPost, "https://app.example.com"},
		{"bare OPTIONS", http.MethodOptions, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/upload", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			want := map[string]string{
				"Access-Control-Allow-Origin":  "*",
				"Access-Control-Allow-Methods": "POST, OPTIONS",
				"Access-Control-Allow-Headers": "Content-Type, Authorization",
			}
			for k, v := range want {
				if got := rec.Header().Get(k); got != v {
					t.Errorf("%s = %q; want %q", k, got, v)
				}
			}
		})
	}
}
