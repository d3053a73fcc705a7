package service

import (
	"context"
)

// ShortenResult is the outcome of a shorten call
type ShortenResult struct {
	ShortCode string
	Created   bool
}

// URLShortener defines the interface for URL shortening operations
type URLShortener interface {
	// Shorten returns the short code for a long URL, creating a new
	// record only when none exists
	Shorten(ctx context.Context, longURL string) (*ShortenResult, error)

	// Resolve returns the long URL for a short code and accounts the
	// click; returns domain.ErrNotFound for unknown codes
	Resolve(ctx context.Context, shortCode string) (string, error)

	// ClicksForLongURL reports the click count for a long URL
	ClicksForLongURL(ctx context.Context, longURL string) (int64, error)

	// ClicksForShortCode reports the click count for a short code
	ClicksForShortCode(ctx context.Context, shortCode string) (int64, error)

	// TotalClicks reports the click count across all URLs
	TotalClicks(ctx context.Context) (int64, error)

	// Close closes the service and its dependencies
	Close() error
}
