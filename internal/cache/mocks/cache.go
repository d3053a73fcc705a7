package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// URLCache is a mock implementation of cache.URLCache
type URLCache struct {
	mock.Mock
}

// GetShortCode retrieves the cached short code for a long URL
func (m *URLCache) GetShortCode(ctx context.Context, longURL string) (string, bool, error) {
	args := m.Called(ctx, longURL)
	return args.String(0), args.Bool(1), args.Error(2)
}

// GetLongURL retrieves the cached long URL for a short code
func (m *URLCache) GetLongURL(ctx context.Context, shortCode string) (string, bool, error) {
	args := m.Called(ctx, shortCode)
	return args.String(0), args.Bool(1), args.Error(2)
}

// SetPair writes both cache directions for a URL pair
func (m *URLCache) SetPair(ctx context.Context, longURL, shortCode string) error {
	args := m.Called(ctx, longURL, shortCode)
	return args.Error(0)
}

// SetLongURL writes only the code-to-URL direction
func (m *URLCache) SetLongURL(ctx context.Context, shortCode, longURL string) error {
	args := m.Called(ctx, shortCode, longURL)
	return args.Error(0)
}

// Close closes the cache connection
func (m *URLCache) Close() error {
	args := m.Called()
	return args.Error(0)
}
