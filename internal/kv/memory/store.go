package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/Yesho700/url-shortner/internal/kv"
)

// Store implements kv.Store using in-process storage. It exists for
// tests and for running the server without a Redis instance; the mutex
// stands in for the remote store's single-threaded command execution.
type Store struct {
	mutex   sync.Mutex
	strings map[string]stringEntry
	zsets   map[string]map[string]float64
	expiry  map[string]time.Time
}

type stringEntry struct {
	value     string
	expiresAt time.Time
}

// New creates a new in-memory store
func New() *Store {
	return &Store{
		strings: make(map[string]stringEntry),
		zsets:   make(map[string]map[string]float64),
		expiry:  make(map[string]time.Time),
	}
}

// Get retrieves the string value for a key
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	entry, exists := s.strings[key]
	if !exists {
		return "", false, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		delete(s.strings, key)
		return "", false, nil
	}
	return entry.value, true, nil
}

// Set stores a string value with an optional TTL
func (s *Store) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	entry := stringEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	s.strings[key] = entry
	return nil
}

// Delete removes a key
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.strings, key)
	delete(s.zsets, key)
	delete(s.expiry, key)
	return nil
}

// Increment atomically increments the integer value of a key
func (s *Store) Increment(ctx context.Context, key string) (int64, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	current := int64(0)
	if entry, exists := s.strings[key]; exists {
		parsed, err := strconv.ParseInt(entry.value, 10, 64)
		if err != nil {
			return 0, err
		}
		current = parsed
	}
	current++
	s.strings[key] = stringEntry{value: strconv.FormatInt(current, 10)}
	return current, nil
}

// ZAdd adds a member with the given score to a sorted set
func (s *Store) ZAdd(ctx context.Context, key string, score float64, member string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.pruneExpiredZSet(key)
	set, exists := s.zsets[key]
	if !exists {
		set = make(map[string]float64)
		s.zsets[key] = set
	}
	set[member] = score
	return nil
}

// ZRemRangeByScore removes all sorted-set members with a score in [min, max]
func (s *Store) ZRemRangeByScore(ctx context.Context, key string, min, max float64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.removeRange(key, min, max)
	return nil
}

// ZCard returns the number of members in a sorted set
func (s *Store) ZCard(ctx context.Context, key string) (int64, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.pruneExpiredZSet(key)
	return int64(len(s.zsets[key])), nil
}

// ZRangeByScore returns the members with a score in [min, max] in score order
func (s *Store) ZRangeByScore(ctx context.Context, key string, min, max float64) ([]string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.pruneExpiredZSet(key)
	var members []string
	for member, score := range s.zsets[key] {
		if score >= min && score <= max {
			members = append(members, member)
		}
	}
	set := s.zsets[key]
	sort.Slice(members, func(i, j int) bool {
		return set[members[i]] < set[members[j]]
	})
	return members, nil
}

// ZPurgeCount removes members in [min, max] and counts the remainder
// while holding the lock, matching the remote store's transaction
func (s *Store) ZPurgeCount(ctx context.Context, key string, min, max float64) (int64, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.pruneExpiredZSet(key)
	s.removeRange(key, min, max)
	return int64(len(s.zsets[key])), nil
}

// Expire sets the TTL on a key
func (s *Store) Expire(ctx context.Context, key string, ttl time.Duration) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if entry, exists := s.strings[key]; exists {
		entry.expiresAt = time.Now().Add(ttl)
		s.strings[key] = entry
	}
	if _, exists := s.zsets[key]; exists {
		s.expiry[key] = time.Now().Add(ttl)
	}
	return nil
}

// Close is a no-op for the in-memory store
func (s *Store) Close() error {
	return nil
}

// removeRange deletes members of key with score in [min, max]; callers hold the lock
func (s *Store) removeRange(key string, min, max float64) {
	for member, score := range s.zsets[key] {
		if score >= min && score <= max {
			delete(s.zsets[key], member)
		}
	}
}

// pruneExpiredZSet drops a sorted set whose key-level TTL has passed; callers hold the lock
func (s *Store) pruneExpiredZSet(key string) {
	if deadline, exists := s.expiry[key]; exists && time.Now().After(deadline) {
		delete(s.zsets, key)
		delete(s.expiry, key)
	}
}

// Ensure Store implements the kv.Store interface
var _ kv.Store = (*Store)(nil)
