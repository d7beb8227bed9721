package controller

import (
	"net/http"
	"slices"
)

// WithCORS returns a middleware that sets CORS headers on every response and
// short-circuits OPTIONS preflight requests with 204 No Content. With no
// allowed origins any origin is accepted; otherwise only listed origins get
// CORS headers.
func WithCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			allowed := true
			switch {
			case len(allowedOrigins) == 0:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case origin != "" && slices.Contains(allowedOrigins, origin):
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Add("Vary", "Origin")
			default:
				allowed = false
			}
			if allowed {
				w.Header().Set("Access-Control-Allow-Headers",
					"Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control")
				w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")
			}

			// handle preflight requests quickly
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
