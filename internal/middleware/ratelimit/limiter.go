package ratelimit

import (
	"sort"
	"sync"
	"time"

	"github.com/kbpark824/quizr/internal/config"
)

type entry struct {
	count         int
	windowResetAt time.Time
	lastAccessAt  time.Time
}

// Stats exposes the limiter's internals for monitoring.
type Stats struct {
	Size        int       `json:"size"`
	Capacity    int       `json:"capacity"`
	LastCleanup time.Time `json:"last_cleanup"`
}

// Limiter is a fixed-window per-key request counter with bounded memory.
// Counters live only in this process; a restart resets them and concurrent
// instances each keep independent counts. That tradeoff buys O(1) amortized
// operations and a hard cap on entries.
type Limiter struct {
	mu sync.Mutex

	entries         map[string]*entry
	window          time.Duration
	maxRequests     int
	capacity        int
	cleanupInterval time.Duration
	lastCleanup     time.Time

	now func() time.Time
}

// NewLimiter creates a limiter from configuration
func NewLimiter(cfg *config.RateLimitConfig) *Limiter {
	return newLimiter(cfg, time.Now)
}

func newLimiter(cfg *config.RateLimitConfig, now func() time.Time) *Limiter {
	return &Limiter{
		entries:         make(map[string]*entry),
		window:          cfg.Window,
		maxRequests:     cfg.MaxRequests,
		capacity:        cfg.Capacity,
		cleanupInterval: cfg.CleanupInterval,
		lastCleanup:     now(),
		now:             now,
	}
}

// Allow reports whether clientID may proceed, counting this request against
// its current window.
func (l *Limiter) Allow(clientID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	if now.Sub(l.lastCleanup) >= l.cleanupInterval {
		l.sweepLocked(now)
	}

	e, ok := l.entries[clientID]
	if !ok || !now.Before(e.windowResetAt) {
		if !ok && len(l.entries) >= l.capacity {
			l.evictOldestLocked()
		}
		l.entries[clientID] = &entry{
			count:         1,
			windowResetAt: now.Add(l.window),
			lastAccessAt:  now,
		}
		return true
	}

	e.lastAccessAt = now
	if e.count < l.maxRequests {
		e.count++
		return true
	}
	return false
}

// RetryAfter returns how long clientID must wait before its window resets.
func (l *Limiter) RetryAfter(clientID string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[clientID]
	if !ok {
		return 0
	}
	remaining := e.windowResetAt.Sub(l.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Window returns the configured window length
func (l *Limiter) Window() time.Duration {
	return l.window
}

// MaxRequests returns the configured per-window request cap
func (l *Limiter) MaxRequests() int {
	return l.maxRequests
}

// Stats returns the current size, capacity, and last cleanup time
func (l *Limiter) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	return Stats{
		Size:        len(l.entries),
		Capacity:    l.capacity,
		LastCleanup: l.lastCleanup,
	}
}

// sweepLocked drops entries whose window expired more than one window-length
// ago. Callers must hold the mutex.
func (l *Limiter) sweepLocked(now time.Time) {
	stale := now.Add(-l.window)
	for key, e := range l.entries {
		if e.windowResetAt.Before(stale) {
			delete(l.entries, key)
		}
	}
	l.lastCleanup = now
}

// evictOldestLocked removes the least-recently-accessed quarter of entries to
// make room for a new key at capacity. Callers must hold the mutex.
func (l *Limiter) evictOldestLocked() {
	type keyed struct {
		key          string
		lastAccessAt time.Time
	}

	ordered := make([]keyed, 0, len(l.entries))
	for key, e := range l.entries {
		ordered = append(ordered, keyed{key: key, lastAccessAt: e.lastAccessAt})
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].lastAccessAt.Before(ordered[j].lastAccessAt)
	})

	evictCount := len(ordered) / 4
	if evictCount < 1 {
		evictCount = 1
	}
	for _, victim := range ordered[:evictCount] {
		delete(l.entries, victim.key)
	}
}
