package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of kv.Store
type Store struct {
	mock.Mock
}

// Get retrieves the string value for a key
func (m *Store) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

// Set stores a string value with an optional TTL
func (m *Store) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

// Delete removes a key
func (m *Store) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// Increment atomically increments the integer value of a key
func (m *Store) Increment(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

// ZAdd adds a member with the given score to a sorted set
func (m *Store) ZAdd(ctx context.Context, key string, score float64, member string) error {
	args := m.Called(ctx, key, score, member)
	return args.Error(0)
}

// ZRemRangeByScore removes all sorted-set members with a score in [min, max]
func (m *Store) ZRemRangeByScore(ctx context.Context, key string, min, max float64) error {
	args := m.Called(ctx, key, min, max)
	return args.Error(0)
}

// ZCard returns the number of members in a sorted set
func (m *Store) ZCard(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

// ZRangeByScore returns the members with a score in [min, max]
func (m *Store) ZRangeByScore(ctx context.Context, key string, min, max float64) ([]string, error) {
	args := m.Called(ctx, key, min, max)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// ZPurgeCount removes members in [min, max] and returns the remaining cardinality
func (m *Store) ZPurgeCount(ctx context.Context, key string, min, max float64) (int64, error) {
	args := m.Called(ctx, key, min, max)
	return args.Get(0).(int64), args.Error(1)
}

// Expire sets the TTL on a key
func (m *Store) Expire(ctx context.Context, key string, ttl time.Duration) error {
	args := m.Called(ctx, key, ttl)
	return args.Error(0)
}

// Close closes the store connection
func (m *Store) Close() error {
	args := m.Called()
	return args.Error(0)
}
