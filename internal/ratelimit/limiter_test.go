package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Yesho700/url-shortner/internal/kv/memory"
	"github.com/Yesho700/url-shortner/internal/kv/mocks"
)

// fakeClock drives the limiter's view of time in whole seconds
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestLimiter(window time.Duration, limit int64) (*Limiter, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	limiter := New(memory.New(), window, limit)
	limiter.now = clock.Now
	return limiter, clock
}

func TestLimiter_AllowsUpToLimit(t *testing.T) {
	limiter, clock := newTestLimiter(10*time.Second, 5)
	ctx := context.Background()

	// One request per second; same-second requests coalesce into one
	// window member by design
	for i := 0; i < 5; i++ {
		exceeded, err := limiter.Exceeded(ctx, "1.2.3.4")
		if err != nil {
			t.Fatalf("Exceeded failed on request %d: %v", i+1, err)
		}
		if exceeded {
			t.Errorf("Request %d should be allowed", i+1)
		}
		clock.Advance(time.Second)
	}

	exceeded, err := limiter.Exceeded(ctx, "1.2.3.4")
	if err != nil {
		t.Fatalf("Exceeded failed: %v", err)
	}
	if !exceeded {
		t.Error("Request beyond the limit should be rejected")
	}
}

func TestLimiter_SlidingWindowScenario(t *testing.T) {
	// limit=3, window=10s: requests at t=0,2,4 allowed, t=5 rejected,
	// t=11 allowed again once t=0 has aged out
	limiter, clock := newTestLimiter(10*time.Second, 3)
	ctx := context.Background()

	steps := []struct {
		at       time.Duration
		exceeded bool
	}{
		{0 * time.Second, false},
		{2 * time.Second, false},
		{4 * time.Second, false},
		{5 * time.Second, true},
		{11 * time.Second, false},
	}

	start := clock.Now()
	for _, step := range steps {
		clock.now = start.Add(step.at)
		exceeded, err := limiter.Exceeded(ctx, "1.2.3.4")
		if err != nil {
			t.Fatalf("Exceeded failed at t=%v: %v", step.at, err)
		}
		if exceeded != step.exceeded {
			t.Errorf("At t=%v: expected exceeded=%v, got %v", step.at, step.exceeded, exceeded)
		}
	}
}

func TestLimiter_ResetsAfterWindow(t *testing.T) {
	limiter, clock := newTestLimiter(10*time.Second, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if exceeded, err := limiter.Exceeded(ctx, "1.2.3.4"); err != nil || exceeded {
			t.Fatalf("Request %d should be allowed, got exceeded=%v err=%v", i+1, exceeded, err)
		}
		clock.Advance(time.Second)
	}
	if exceeded, _ := limiter.Exceeded(ctx, "1.2.3.4"); !exceeded {
		t.Fatal("Third request should be rejected")
	}

	clock.Advance(11 * time.Second)

	exceeded, err := limiter.Exceeded(ctx, "1.2.3.4")
	if err != nil {
		t.Fatalf("Exceeded failed after window: %v", err)
	}
	if exceeded {
		t.Error("Request after the window elapsed should be allowed")
	}
}

func TestLimiter_RejectedRequestsNotCounted(t *testing.T) {
	limiter, clock := newTestLimiter(10*time.Second, 1)
	ctx := context.Background()

	if exceeded, _ := limiter.Exceeded(ctx, "1.2.3.4"); exceeded {
		t.Fatal("First request should be allowed")
	}

	// Hammer while over budget; none of these may extend the window
	for i := 0; i < 5; i++ {
		clock.Advance(time.Second)
		if exceeded, _ := limiter.Exceeded(ctx, "1.2.3.4"); !exceeded {
			t.Fatalf("Request %d should be rejected", i+2)
		}
	}

	// 11s after the single allowed request its timestamp has aged out
	clock.Advance(6 * time.Second)
	exceeded, err := limiter.Exceeded(ctx, "1.2.3.4")
	if err != nil {
		t.Fatalf("Exceeded failed: %v", err)
	}
	if exceeded {
		t.Error("Rejected requests must not count toward the window")
	}
}

func TestLimiter_IdentitiesAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(10*time.Second, 1)
	ctx := context.Background()

	if exceeded, _ := limiter.Exceeded(ctx, "1.2.3.4"); exceeded {
		t.Fatal("First identity should be allowed")
	}
	if exceeded, _ := limiter.Exceeded(ctx, "5.6.7.8"); exceeded {
		t.Error("Second identity has its own budget")
	}
	if exceeded, _ := limiter.Exceeded(ctx, "1.2.3.4"); !exceeded {
		t.Error("First identity should now be over budget")
	}
}

func TestLimiter_StoreErrorIsHardFailure(t *testing.T) {
	store := &mocks.Store{}
	store.On("ZPurgeCount", mock.Anything, "rate-limit:1.2.3.4", 0.0, mock.AnythingOfType("float64")).
		Return(int64(0), errors.New("connection refused"))

	limiter := New(store, 10*time.Second, 3)

	_, err := limiter.Exceeded(context.Background(), "1.2.3.4")
	if err == nil {
		t.Fatal("Expected error when the purge-count transaction fails")
	}
	store.AssertExpectations(t)
}

func TestLimiter_AppendFailureDoesNotFlipDecision(t *testing.T) {
	store := &mocks.Store{}
	store.On("ZPurgeCount", mock.Anything, "rate-limit:1.2.3.4", 0.0, mock.AnythingOfType("float64")).
		Return(int64(0), nil)
	store.On("ZAdd", mock.Anything, "rate-limit:1.2.3.4", mock.AnythingOfType("float64"), mock.AnythingOfType("string")).
		Return(errors.New("connection reset"))

	limiter := New(store, 10*time.Second, 3)

	exceeded, err := limiter.Exceeded(context.Background(), "1.2.3.4")
	if err != nil {
		t.Fatalf("Append failure must not surface: %v", err)
	}
	if exceeded {
		t.Error("Decision already made must stand despite the append failure")
	}
	store.AssertExpectations(t)
}
