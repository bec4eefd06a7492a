// Package ratelimit limits how often a caller may invoke an operation.
package ratelimit

import (
	"sync"
	"time"

	"github.com/go-chi/httprate"
)

// Limiter decides whether one more event for key is allowed now.
type Limiter interface {
	Allow(key string) bool
}

// SlidingWindow allows about limit events per key within any window-long period.
// Counts live in an httprate counter split into fixed windows; the previous
// window is weighted by how much of it still overlaps the sliding window.
type SlidingWindow struct {
	limit   int
	window  time.Duration
	now     func() time.Time
	counter httprate.LimitCounter

	mu sync.Mutex
}

// Option configures a SlidingWindow.
type Option func(*SlidingWindow)

// WithClock replaces the clock used to place events in windows.
func WithClock(now func() time.Time) Option {
	return func(w *SlidingWindow) {
		w.now = now
	}
}

// WithCounter replaces the in-memory counter, e.g. with one shared between replicas.
func WithCounter(counter httprate.LimitCounter) Option {
	return func(w *SlidingWindow) {
		w.counter = counter
	}
}

// NewSlidingWindow creates a limiter. A limit below 1 rejects every event.
func NewSlidingWindow(limit int, window time.Duration, opts ...Option) *SlidingWindow {
	w := &SlidingWindow{
		limit:  limit,
		window: window,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.counter == nil {
		w.counter = httprate.NewLocalLimitCounter(window)
	} else {
		w.counter.Config(limit, window)
	}
	return w
}

// Allow records the event and returns true if key is still under its limit.
// Rejected events are not recorded. A failing counter rejects the event.
func (w *SlidingWindow) Allow(key string) bool {
	now := w.now().UTC()
	current := now.Truncate(w.window)
	previous := current.Add(-w.window)

	w.mu.Lock()
	defer w.mu.Unlock()

	currCount, prevCount, err := w.counter.Get(key, current, previous)
	if err != nil {
		return false
	}
	overlap := float64(w.window-now.Sub(current)) / float64(w.window)
	rate := float64(prevCount)*overlap + float64(currCount)
	if rate+1 > float64(w.limit) {
		return false
	}
	return w.counter.Increment(key, current) == nil
}
