// Package ratelimit implements the fixed-window request limiter the
// gateway applies per remote host.
package ratelimit

import (
	"sync"
	"time"
)

type Limiter struct {
	mu     sync.Mutex
	limits map[string]*window
}

type window struct {
	count     int
	resetTime time.Time
	limit     int
}

func NewLimiter() *Limiter {
	return &Limiter{limits: make(map[string]*window)}
}

// Allow records one request for key and reports whether it is within
// limit requests per win. The window is fixed, not sliding: counts reset
// when the window expires.
func (l *Limiter) Allow(key string, limit int, win time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	entry, ok := l.limits[key]
	if !ok {
		entry = &window{resetTime: now.Add(win), limit: limit}
		l.limits[key] = entry
	}

	if now.After(entry.resetTime) {
		entry.count = 0
		entry.resetTime = now.Add(win)
	}

	// The caller's limit wins over whatever the key was created with, so
	// a reconfigured limit takes effect mid-window.
	entry.limit = limit

	if entry.count < limit {
		entry.count++
		return true
	}
	return false
}

// Remaining returns how many requests key has left in its current window,
// or 0 for unknown keys.
func (l *Limiter) Remaining(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.limits[key]
	if !ok {
		return 0
	}
	if r := entry.limit - entry.count; r > 0 {
		return r
	}
	return 0
}
