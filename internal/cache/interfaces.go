package cache

import (
	"context"
)

// URLCache defines the interface for the bidirectional URL cache that
// fronts the durable store. Entries are a performance optimization
// only; a miss means nothing beyond "consult the durable store".
type URLCache interface {
	// GetShortCode retrieves the cached short code for a long URL
	GetShortCode(ctx context.Context, longURL string) (shortCode string, found bool, err error)

	// GetLongURL retrieves the cached long URL for a short code
	GetLongURL(ctx context.Context, shortCode string) (longURL string, found bool, err error)

	// SetPair writes both cache directions for a URL pair. Both writes
	// are always attempted; the returned error joins any failures.
	SetPair(ctx context.Context, longURL, shortCode string) error

	// SetLongURL writes only the code-to-URL direction
	SetLongURL(ctx context.Context, shortCode, longURL string) error

	// Close closes the cache connection (if applicable)
	Close() error
}
