package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowWithinLimit(t *testing.T) {
	limiter := NewLimiter()

	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Allow("host", 5, time.Second), "request %d", i)
	}
	assert.False(t, limiter.Allow("host", 5, time.Second))
}

func TestWindowReset(t *testing.T) {
	limiter := NewLimiter()

	assert.True(t, limiter.Allow("host", 1, 20*time.Millisecond))
	assert.False(t, limiter.Allow("host", 1, 20*time.Millisecond))

	time.Sleep(30 * time.Millisecond)
	assert.True(t, limiter.Allow("host", 1, 20*time.Millisecond))
}

func TestKeysAreIndependent(t *testing.T) {
	limiter := NewLimiter()

	assert.True(t, limiter.Allow("a", 1, time.Second))
	assert.False(t, limiter.Allow("a", 1, time.Second))
	assert.True(t, limiter.Allow("b", 1, time.Second))
}

func TestLimitChangeAppliesToExistingKey(t *testing.T) {
	limiter := NewLimiter()

	assert.True(t, limiter.Allow("host", 1, time.Second))
	assert.False(t, limiter.Allow("host", 1, time.Second))

	// A raised limit takes effect immediately for the same key.
	assert.True(t, limiter.Allow("host", 3, time.Second))
	assert.Equal(t, 1, limiter.Remaining("host"))

	// And a lowered one as well.
	assert.False(t, limiter.Allow("host", 2, time.Second))
}

func TestRemaining(t *testing.T) {
	limiter := NewLimiter()

	assert.Equal(t, 0, limiter.Remaining("host"))
	limiter.Allow("host", 3, time.Second)
	assert.Equal(t, 2, limiter.Remaining("host"))
	limiter.Allow("host", 3, time.Second)
	limiter.Allow("host", 3, time.Second)
	limiter.Allow("host", 3, time.Second)
	assert.Equal(t, 0, limiter.Remaining("host"))
}
