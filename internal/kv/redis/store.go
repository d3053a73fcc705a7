package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Yesho700/url-shortner/internal/kv"
)

// Store implements kv.Store backed by Redis
type Store struct {
	client *redis.Client
}

// New creates a Redis-backed store and verifies connectivity
func New(addr string) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return &Store{client: client}, nil
}

// NewFromClient wraps an existing Redis client
func NewFromClient(client *redis.Client) *Store {
	return &Store{client: client}
}

// Get retrieves the string value for a key
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores a string value with an optional TTL
func (s *Store) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Delete removes a key
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// Increment atomically increments the integer value of a key
func (s *Store) Increment(ctx context.Context, key string) (int64, error) {
	value, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment key %s: %w", key, err)
	}
	return value, nil
}

// ZAdd adds a member with the given score to a sorted set
func (s *Store) ZAdd(ctx context.Context, key string, score float64, member string) error {
	if err := s.client.ZAdd(ctx, key, redis.Z{Score: score, Member: member}).Err(); err != nil {
		return fmt.Errorf("failed to zadd to key %s: %w", key, err)
	}
	return nil
}

// ZRemRangeByScore removes all sorted-set members with a score in [min, max]
func (s *Store) ZRemRangeByScore(ctx context.Context, key string, min, max float64) error {
	if err := s.client.ZRemRangeByScore(ctx, key, formatScore(min), formatScore(max)).Err(); err != nil {
		return fmt.Errorf("failed to zremrangebyscore on key %s: %w", key, err)
	}
	return nil
}

// ZCard returns the number of members in a sorted set
func (s *Store) ZCard(ctx context.Context, key string) (int64, error) {
	count, err := s.client.ZCard(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to zcard key %s: %w", key, err)
	}
	return count, nil
}

// ZRangeByScore returns the members with a score in [min, max]
func (s *Store) ZRangeByScore(ctx context.Context, key string, min, max float64) ([]string, error) {
	members, err := s.client.ZRangeByScore(ctx, key, &redis.ZRangeBy{
		Min: formatScore(min),
		Max: formatScore(max),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to zrangebyscore on key %s: %w", key, err)
	}
	return members, nil
}

// ZPurgeCount removes members in [min, max] and counts the remainder in
// one MULTI/EXEC round trip so concurrent callers cannot interleave
// between the purge and the count
func (s *Store) ZPurgeCount(ctx context.Context, key string, min, max float64) (int64, error) {
	var card *redis.IntCmd

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, key, formatScore(min), formatScore(max))
		card = pipe.ZCard(ctx, key)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("purge-count transaction failed for key %s: %w", key, err)
	}

	return card.Val(), nil
}

// Expire sets the TTL on a key
func (s *Store) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if err := s.client.Expire(ctx, key, ttl).Err(); err != nil {
		return fmt.Errorf("failed to expire key %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying client
func (s *Store) Close() error {
	return s.client.Close()
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// Ensure Store implements the kv.Store interface
var _ kv.Store = (*Store)(nil)
