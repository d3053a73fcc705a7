package ratelimit

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/Yesho700/url-shortner/internal/kv"
)

// keyPrefix namespaces limiter keys in the shared key-value store
const keyPrefix = "rate-limit:"

// Limiter implements a sliding-window request counter per client
// identity. Request timestamps live in a sorted set scored by their
// unix second; the window slides by purging scores at or below
// now-window before every count.
type Limiter struct {
	store  kv.Store
	window time.Duration
	limit  int64
	now    func() time.Time
}

// New creates a sliding-window limiter allowing limit requests per window
func New(store kv.Store, window time.Duration, limit int64) *Limiter {
	return &Limiter{
		store:  store,
		window: window,
		limit:  limit,
		now:    time.Now,
	}
}

// Exceeded reports whether the identity is over its request budget.
// The purge and count run in a single store transaction; a transaction
// error is a hard failure for the request, never a silent allow or
// deny. Allowed requests are appended to the window afterwards; a
// failure there is logged but does not flip the decision.
func (l *Limiter) Exceeded(ctx context.Context, identity string) (bool, error) {
	now := l.now().Unix()
	cutoff := now - int64(l.window.Seconds())
	key := keyPrefix + identity

	count, err := l.store.ZPurgeCount(ctx, key, 0, float64(cutoff))
	if err != nil {
		return false, fmt.Errorf("rate limit check failed for %s: %w", identity, err)
	}

	if count >= l.limit {
		return true, nil
	}

	// Timestamp doubles as the member, so requests landing in the same
	// second coalesce into one entry. Accepted approximation.
	member := strconv.FormatInt(now, 10)
	if err := l.store.ZAdd(ctx, key, float64(now), member); err != nil {
		log.Printf("[ERROR] Failed to record request in window for %s: %v", identity, err)
		return false, nil
	}
	if err := l.store.Expire(ctx, key, l.window); err != nil {
		log.Printf("[ERROR] Failed to refresh window expiry for %s: %v", identity, err)
	}

	return false, nil
}

// Window returns the configured window size
func (l *Limiter) Window() time.Duration {
	return l.window
}

// Limit returns the configured request budget per window
func (l *Limiter) Limit() int64 {
	return l.limit
}
