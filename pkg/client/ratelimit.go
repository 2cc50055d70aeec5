package client

import (
	"sync"
	"time"
)

// rateLimiter is a fixed-window counter. Allow reports whether another
// request fits in the current window; the second return is true exactly
// once per exhausted window so the caller emits a single
// local-rate-limit-reached event per window.
type rateLimiter struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	start    time.Time
	count    int
	notified bool

	// now is swappable for tests
	now func() time.Time
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{limit: limit, window: window, now: time.Now}
}

func (r *rateLimiter) Allow() (allowed, firstRefusal bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if r.start.IsZero() || now.Sub(r.start) >= r.window {
		r.start = now
		r.count = 0
		r.notified = false
	}

	if r.count >= r.limit {
		first := !r.notified
		r.notified = true
		return false, first
	}

	r.count++
	return true, false
}
