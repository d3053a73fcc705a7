package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Yesho700/url-shortner/internal/cache"
	"github.com/Yesho700/url-shortner/internal/domain"
	"github.com/Yesho700/url-shortner/internal/metrics"
	"github.com/Yesho700/url-shortner/internal/repository"
	"github.com/Yesho700/url-shortner/internal/shortener"
)

// createAttempts bounds short-code retries on a uniqueness collision
const createAttempts = 3

// urlShortener implements URLShortener interface
type urlShortener struct {
	repo      repository.URLRepository
	cache     cache.URLCache
	generator shortener.Generator
	clicks    *ClickRecorder
}

// NewURLShortener creates a new URL shortener service
func NewURLShortener(repo repository.URLRepository, urlCache cache.URLCache, generator shortener.Generator, clicks *ClickRecorder) URLShortener {
	return &urlShortener{
		repo:      repo,
		cache:     urlCache,
		generator: generator,
		clicks:    clicks,
	}
}

// Shorten returns the short code for a long URL. Lookup order: cache,
// durable store, create. Only the create path mints a new code.
func (s *urlShortener) Shorten(ctx context.Context, longURL string) (*ShortenResult, error) {
	// Cache first
	shortCode, found, err := s.cache.GetShortCode(ctx, longURL)
	if err != nil {
		return nil, fmt.Errorf("failed to shorten URL: %w", err)
	}
	if found {
		metrics.CacheHitsTotal.Inc()
		return &ShortenResult{ShortCode: shortCode, Created: false}, nil
	}
	metrics.CacheMissesTotal.Inc()

	// Fall back to the durable store
	existing, err := s.repo.FindByLongURL(ctx, longURL)
	if err == nil {
		if cacheErr := s.cache.SetPair(ctx, existing.LongURL, existing.ShortCode); cacheErr != nil {
			log.Printf("[ERROR] Failed to cache existing URL pair %s: %v", existing.ShortCode, cacheErr)
		}
		return &ShortenResult{ShortCode: existing.ShortCode, Created: false}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to shorten URL: %w", err)
	}

	// No record anywhere: mint a code and insert. The store's unique
	// constraint on short_code backstops generator collisions.
	entry, err := s.createURL(ctx, longURL)
	if err != nil {
		return nil, err
	}

	if cacheErr := s.cache.SetPair(ctx, entry.LongURL, entry.ShortCode); cacheErr != nil {
		log.Printf("[ERROR] Failed to cache new URL pair %s: %v", entry.ShortCode, cacheErr)
	}

	return &ShortenResult{ShortCode: entry.ShortCode, Created: true}, nil
}

// createURL inserts a new record, retrying with a fresh code when the
// uniqueness constraint rejects a collision
func (s *urlShortener) createURL(ctx context.Context, longURL string) (*domain.ShortURL, error) {
	for attempt := 0; attempt < createAttempts; attempt++ {
		shortCode, err := s.generator.GenerateShortCode(ctx, longURL)
		if err != nil {
			return nil, fmt.Errorf("failed to generate short code: %w", err)
		}

		now := time.Now()
		entry, err := s.repo.Create(ctx, longURL, shortCode, now, now.Add(domain.DefaultRecordTTL))
		if err == nil {
			return entry, nil
		}
		if errors.Is(err, domain.ErrCodeExists) {
			log.Printf("Short code collision on %s, retrying", shortCode)
			continue
		}
		return nil, fmt.Errorf("failed to create URL: %w", err)
	}

	return nil, fmt.Errorf("failed to create URL: exhausted %d short code attempts", createAttempts)
}

// Resolve returns the long URL for a short code. On a cache hit the
// click is accounted asynchronously; on a miss the durable lookup and
// the click increment are one atomic operation.
func (s *urlShortener) Resolve(ctx context.Context, shortCode string) (string, error) {
	longURL, found, err := s.cache.GetLongURL(ctx, shortCode)
	if err != nil {
		return "", fmt.Errorf("failed to resolve URL: %w", err)
	}
	if found {
		metrics.CacheHitsTotal.Inc()
		s.clicks.Record(shortCode)
		return longURL, nil
	}
	metrics.CacheMissesTotal.Inc()

	entry, err := s.repo.FindAndIncrementClicks(ctx, shortCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("failed to resolve URL: %w", err)
	}

	if cacheErr := s.cache.SetLongURL(ctx, shortCode, entry.LongURL); cacheErr != nil {
		log.Printf("[ERROR] Failed to cache resolved URL %s: %v", shortCode, cacheErr)
	}

	return entry.LongURL, nil
}

// ClicksForLongURL reports the click count for a long URL
func (s *urlShortener) ClicksForLongURL(ctx context.Context, longURL string) (int64, error) {
	entry, err := s.repo.FindByLongURL(ctx, longURL)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("failed to get clicks: %w", err)
	}
	return entry.Clicks, nil
}

// ClicksForShortCode reports the click count for a short code
func (s *urlShortener) ClicksForShortCode(ctx context.Context, shortCode string) (int64, error) {
	entry, err := s.repo.FindByShortCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("failed to get clicks: %w", err)
	}
	return entry.Clicks, nil
}

// TotalClicks reports the click count across all URLs
func (s *urlShortener) TotalClicks(ctx context.Context) (int64, error) {
	total, err := s.repo.TotalClicks(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get total clicks: %w", err)
	}
	return total, nil
}

// Close closes the service and its dependencies
func (s *urlShortener) Close() error {
	if err := s.clicks.Close(); err != nil {
		return fmt.Errorf("failed to close click recorder: %w", err)
	}
	if err := s.generator.Close(); err != nil {
		return fmt.Errorf("failed to close generator: %w", err)
	}
	if err := s.cache.Close(); err != nil {
		return fmt.Errorf("failed to close cache: %w", err)
	}
	if err := s.repo.Close(); err != nil {
		return fmt.Errorf("failed to close repository: %w", err)
	}
	return nil
}

// Ensure urlShortener implements URLShortener interface
var _ URLShortener = (*urlShortener)(nil)
