package middleware

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

// RateLimit applies a process-wide token bucket to every request. The
// dashboard serves a handful of pre-rendered pages, so a single global
// limiter is enough; clients over the limit get 429 with Retry-After.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// BasicAuth gates the dashboard behind HTTP basic auth when a bcrypt password
// hash is configured. An empty hash disables the gate, which is the default
// for public deployments.
func BasicAuth(hash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if hash == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, pass, ok := r.BasicAuth()
			if !ok || bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass)) != nil {
				w.Header().Set("WWW-Authenticate", `Basic realm="dashboard"`)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
