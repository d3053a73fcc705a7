package kv

import (
	"context"
	"time"
)

// Store defines the interface for the remote key-value store used for
// caching and rate-limit bookkeeping
type Store interface {
	// Get retrieves the string value for a key; found is false on a miss
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores a string value with an optional TTL (zero means no expiry)
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Delete removes a key
	Delete(ctx context.Context, key string) error

	// Increment atomically increments the integer value of a key
	Increment(ctx context.Context, key string) (int64, error)

	// ZAdd adds a member with the given score to a sorted set
	ZAdd(ctx context.Context, key string, score float64, member string) error

	// ZRemRangeByScore removes all sorted-set members with a score in [min, max]
	ZRemRangeByScore(ctx context.Context, key string, min, max float64) error

	// ZCard returns the number of members in a sorted set
	ZCard(ctx context.Context, key string) (int64, error)

	// ZRangeByScore returns the members with a score in [min, max]
	ZRangeByScore(ctx context.Context, key string, min, max float64) ([]string, error)

	// ZPurgeCount removes all members with a score in [min, max] and
	// returns the remaining cardinality. Both steps execute in a single
	// atomic transaction against the store.
	ZPurgeCount(ctx context.Context, key string, min, max float64) (int64, error)

	// Expire sets the TTL on a key
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// Close closes the store connection (if applicable)
	Close() error
}
