package ratelimit

import (
	"log"
	"net/http"
)

// Middleware gates HTTP requests through the sliding-window limiter,
// keyed by the resolved client identity
type Middleware struct {
	limiter   *Limiter
	onLimited func()
	skipPaths map[string]bool
}

// NewMiddleware creates rate-limiting middleware. onLimited, if
// non-nil, is invoked for every rejected request (metrics hook).
// skipPaths are exempt from limiting (operational endpoints).
func NewMiddleware(limiter *Limiter, onLimited func(), skipPaths ...string) *Middleware {
	skip := make(map[string]bool, len(skipPaths))
	for _, path := range skipPaths {
		skip[path] = true
	}
	return &Middleware{
		limiter:   limiter,
		onLimited: onLimited,
		skipPaths: skip,
	}
}

// Middleware returns the HTTP rate-limiting middleware function
func (m *Middleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.skipPaths[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}

		identity := ClientIdentity(r)

		exceeded, err := m.limiter.Exceeded(r.Context(), identity)
		if err != nil {
			log.Printf("[ERROR] Rate limit check failed for %s: %v", identity, err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if exceeded {
			log.Printf("Rate limit exceeded for %s", identity)
			if m.onLimited != nil {
				m.onLimited()
			}
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
