package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Yesho700/url-shortner/internal/kv"
)

const (
	// Key families: url:<longUrl> -> shortCode, code:<shortCode> -> longUrl
	longURLPrefix   = "url:"
	shortCodePrefix = "code:"

	// DefaultTTL is how long cache entries live, independent of the
	// record's own expiry in the durable store
	DefaultTTL = time.Hour
)

// urlCache implements URLCache on top of the key-value store adapter
type urlCache struct {
	store kv.Store
	ttl   time.Duration
}

// New creates a URL cache with the given entry TTL (zero means DefaultTTL)
func New(store kv.Store, ttl time.Duration) URLCache {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &urlCache{
		store: store,
		ttl:   ttl,
	}
}

// GetShortCode retrieves the cached short code for a long URL
func (c *urlCache) GetShortCode(ctx context.Context, longURL string) (string, bool, error) {
	value, found, err := c.store.Get(ctx, longURLPrefix+longURL)
	if err != nil {
		return "", false, fmt.Errorf("cache lookup failed for long URL: %w", err)
	}
	return value, found, nil
}

// GetLongURL retrieves the cached long URL for a short code
func (c *urlCache) GetLongURL(ctx context.Context, shortCode string) (string, bool, error) {
	value, found, err := c.store.Get(ctx, shortCodePrefix+shortCode)
	if err != nil {
		return "", false, fmt.Errorf("cache lookup failed for short code: %w", err)
	}
	return value, found, nil
}

// SetPair writes both cache directions in parallel. A failure in one
// direction never prevents the attempt on the other.
func (c *urlCache) SetPair(ctx context.Context, longURL, shortCode string) error {
	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		errs[0] = c.store.Set(ctx, longURLPrefix+longURL, shortCode, c.ttl)
	}()
	go func() {
		defer wg.Done()
		errs[1] = c.store.Set(ctx, shortCodePrefix+shortCode, longURL, c.ttl)
	}()
	wg.Wait()

	return errors.Join(errs...)
}

// SetLongURL writes only the code-to-URL direction
func (c *urlCache) SetLongURL(ctx context.Context, shortCode, longURL string) error {
	return c.store.Set(ctx, shortCodePrefix+shortCode, longURL, c.ttl)
}

// Close closes the underlying store
func (c *urlCache) Close() error {
	return c.store.Close()
}

// Ensure urlCache implements the URLCache interface
var _ URLCache = (*urlCache)(nil)
