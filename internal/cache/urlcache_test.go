package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Yesho700/url-shortner/internal/kv/memory"
	"github.com/Yesho700/url-shortner/internal/kv/mocks"
)

func TestURLCache_SetPairWritesBothDirections(t *testing.T) {
	urlCache := New(memory.New(), time.Hour)
	ctx := context.Background()

	if err := urlCache.SetPair(ctx, "https://example.com", "abc12345"); err != nil {
		t.Fatalf("SetPair failed: %v", err)
	}

	code, found, err := urlCache.GetShortCode(ctx, "https://example.com")
	if err != nil || !found {
		t.Fatalf("Expected short code hit, got found=%v err=%v", found, err)
	}
	if code != "abc12345" {
		t.Errorf("Expected abc12345, got %s", code)
	}

	longURL, found, err := urlCache.GetLongURL(ctx, "abc12345")
	if err != nil || !found {
		t.Fatalf("Expected long URL hit, got found=%v err=%v", found, err)
	}
	if longURL != "https://example.com" {
		t.Errorf("Expected https://example.com, got %s", longURL)
	}
}

func TestURLCache_MissIsNotAnError(t *testing.T) {
	urlCache := New(memory.New(), time.Hour)
	ctx := context.Background()

	_, found, err := urlCache.GetShortCode(ctx, "https://missing.com")
	if err != nil {
		t.Fatalf("Miss must not error: %v", err)
	}
	if found {
		t.Error("Expected a miss")
	}

	_, found, err = urlCache.GetLongURL(ctx, "missing1")
	if err != nil {
		t.Fatalf("Miss must not error: %v", err)
	}
	if found {
		t.Error("Expected a miss")
	}
}

func TestURLCache_SetLongURLOnlyWritesOneDirection(t *testing.T) {
	urlCache := New(memory.New(), time.Hour)
	ctx := context.Background()

	if err := urlCache.SetLongURL(ctx, "abc12345", "https://example.com"); err != nil {
		t.Fatalf("SetLongURL failed: %v", err)
	}

	if _, found, _ := urlCache.GetLongURL(ctx, "abc12345"); !found {
		t.Error("Expected code direction to be cached")
	}
	if _, found, _ := urlCache.GetShortCode(ctx, "https://example.com"); found {
		t.Error("URL direction must not be cached by SetLongURL")
	}
}

func TestURLCache_EntriesExpire(t *testing.T) {
	urlCache := New(memory.New(), 10*time.Millisecond)
	ctx := context.Background()

	urlCache.SetPair(ctx, "https://example.com", "abc12345")
	time.Sleep(20 * time.Millisecond)

	if _, found, _ := urlCache.GetLongURL(ctx, "abc12345"); found {
		t.Error("Expected entry to expire")
	}
}

func TestURLCache_SetPairAttemptsBothOnFailure(t *testing.T) {
	store := &mocks.Store{}
	store.On("Set", mock.Anything, "url:https://example.com", "abc12345", time.Hour).
		Return(errors.New("connection reset"))
	store.On("Set", mock.Anything, "code:abc12345", "https://example.com", time.Hour).
		Return(nil)

	urlCache := New(store, time.Hour)

	err := urlCache.SetPair(context.Background(), "https://example.com", "abc12345")
	if err == nil {
		t.Fatal("Expected joined error when one direction fails")
	}

	// Both writes must have been attempted despite the failure
	store.AssertExpectations(t)
}
