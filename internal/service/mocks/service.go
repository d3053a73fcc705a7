package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Yesho700/url-shortner/internal/service"
)

// URLShortener is a mock implementation of service.URLShortener
type URLShortener struct {
	mock.Mock
}

// Shorten returns the short code for a long URL
func (m *URLShortener) Shorten(ctx context.Context, longURL string) (*service.ShortenResult, error) {
	args := m.Called(ctx, longURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ShortenResult), args.Error(1)
}

// Resolve returns the long URL for a short code
func (m *URLShortener) Resolve(ctx context.Context, shortCode string) (string, error) {
	args := m.Called(ctx, shortCode)
	return args.String(0), args.Error(1)
}

// ClicksForLongURL reports the click count for a long URL
func (m *URLShortener) ClicksForLongURL(ctx context.Context, longURL string) (int64, error) {
	args := m.Called(ctx, longURL)
	return args.Get(0).(int64), args.Error(1)
}

// ClicksForShortCode reports the click count for a short code
func (m *URLShortener) ClicksForShortCode(ctx context.Context, shortCode string) (int64, error) {
	args := m.Called(ctx, shortCode)
	return args.Get(0).(int64), args.Error(1)
}

// TotalClicks reports the click count across all URLs
func (m *URLShortener) TotalClicks(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Close closes the service
func (m *URLShortener) Close() error {
	args := m.Called()
	return args.Error(0)
}
