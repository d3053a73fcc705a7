package repository

import (
	"context"
	"time"

	"github.com/Yesho700/url-shortner/internal/domain"
)

// URLRepository defines the interface for durable URL record operations
type URLRepository interface {
	// Create inserts a new record; returns domain.ErrCodeExists when the
	// short code violates the uniqueness constraint
	Create(ctx context.Context, longURL, shortCode string, createdAt, expiresAt time.Time) (*domain.ShortURL, error)

	// FindByLongURL retrieves a live record by exact long URL match;
	// returns domain.ErrNotFound on a miss
	FindByLongURL(ctx context.Context, longURL string) (*domain.ShortURL, error)

	// FindByShortCode retrieves a live record by short code;
	// returns domain.ErrNotFound on a miss
	FindByShortCode(ctx context.Context, shortCode string) (*domain.ShortURL, error)

	// FindAndIncrementClicks atomically increments the click counter of
	// the record matching shortCode and returns the updated record;
	// returns domain.ErrNotFound on a miss
	FindAndIncrementClicks(ctx context.Context, shortCode string) (*domain.ShortURL, error)

	// IncrementClicks increments the click counter without returning the record
	IncrementClicks(ctx context.Context, shortCode string) error

	// TotalClicks returns the sum of clicks across all records
	TotalClicks(ctx context.Context) (int64, error)

	// PurgeExpired deletes records whose expires_at has passed and
	// returns the number of rows removed
	PurgeExpired(ctx context.Context) (int64, error)

	// Close closes the repository connection
	Close() error
}
