package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Yesho700/url-shortner/internal/metrics"
	"github.com/Yesho700/url-shortner/internal/repository"
)

// ClickRecorder performs best-effort click accounting off the request
// path. Events flow through a buffered queue into a single worker that
// increments the durable counter; errors are logged and never reach
// the caller.
type ClickRecorder struct {
	repo    repository.URLRepository
	queue   chan string
	done    chan struct{}
	mutex   sync.Mutex
	closed  bool
	timeout time.Duration
}

// NewClickRecorder creates a click recorder with the given queue
// capacity and starts its worker
func NewClickRecorder(repo repository.URLRepository, buffer int) *ClickRecorder {
	r := &ClickRecorder{
		repo:    repo,
		queue:   make(chan string, buffer),
		done:    make(chan struct{}),
		timeout: 5 * time.Second,
	}
	go r.worker()
	return r
}

// Record enqueues a click for a short code. It never blocks: if the
// queue is full the click is dropped and counted as such.
func (r *ClickRecorder) Record(shortCode string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.closed {
		return
	}

	select {
	case r.queue <- shortCode:
	default:
		metrics.ClicksDroppedTotal.Inc()
		log.Printf("Click queue full, dropping click for %s", shortCode)
	}
}

// Close drains the queue and stops the worker
func (r *ClickRecorder) Close() error {
	r.mutex.Lock()
	if r.closed {
		r.mutex.Unlock()
		return nil
	}
	r.closed = true
	close(r.queue)
	r.mutex.Unlock()

	<-r.done
	return nil
}

// worker applies queued clicks until the queue is closed
func (r *ClickRecorder) worker() {
	defer close(r.done)

	for shortCode := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		err := r.repo.IncrementClicks(ctx, shortCode)
		cancel()
		if err != nil {
			log.Printf("[ERROR] Failed to record click for %s: %v", shortCode, err)
		}
	}
}
