package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Yesho700/url-shortner/internal/domain"
)

// URLRepository is a mock implementation of repository.URLRepository
type URLRepository struct {
	mock.Mock
}

// Create inserts a new record
func (m *URLRepository) Create(ctx context.Context, longURL, shortCode string, createdAt, expiresAt time.Time) (*domain.ShortURL, error) {
	args := m.Called(ctx, longURL, shortCode, createdAt, expiresAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShortURL), args.Error(1)
}

// FindByLongURL retrieves a record by exact long URL match
func (m *URLRepository) FindByLongURL(ctx context.Context, longURL string) (*domain.ShortURL, error) {
	args := m.Called(ctx, longURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShortURL), args.Error(1)
}

// FindByShortCode retrieves a record by short code
func (m *URLRepository) FindByShortCode(ctx context.Context, shortCode string) (*domain.ShortURL, error) {
	args := m.Called(ctx, shortCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShortURL), args.Error(1)
}

// FindAndIncrementClicks atomically increments clicks and returns the updated record
func (m *URLRepository) FindAndIncrementClicks(ctx context.Context, shortCode string) (*domain.ShortURL, error) {
	args := m.Called(ctx, shortCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShortURL), args.Error(1)
}

// IncrementClicks increments the click counter
func (m *URLRepository) IncrementClicks(ctx context.Context, shortCode string) error {
	args := m.Called(ctx, shortCode)
	return args.Error(0)
}

// TotalClicks returns the sum of clicks across all records
func (m *URLRepository) TotalClicks(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// PurgeExpired deletes expired records
func (m *URLRepository) PurgeExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Close closes the repository connection
func (m *URLRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}
