package services

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.UnixMilli(1_700_000_000_000)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestRateLimitService_AllowsMaxThenDenies(t *testing.T) {
	clock := newFakeClock()
	limiter := NewRateLimitService(3, time.Minute, clock.Now)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		decision, err := limiter.CheckAndConsume(ctx, "client-a")
		require.NoError(t, err)
		assert.True(t, decision.Allowed, "attempt %d", i)
		clock.Advance(time.Second)
	}

	before, ok := limiter.Record("client-a")
	require.True(t, ok)
	assert.Equal(t, 3, before.Count)

	decision, err := limiter.CheckAndConsume(ctx, "client-a")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, int64(57_000), decision.RemainingMs)

	after, _ := limiter.Record("client-a")
	assert.Equal(t, before, after, "denial must not change the record")
}

func TestRateLimitService_IdentifiersAreIndependent(t *testing.T) {
	limiter := NewRateLimitService(1, time.Minute, newFakeClock().Now)
	ctx := context.Background()

	first, _ := limiter.CheckAndConsume(ctx, "a")
	second, _ := limiter.CheckAndConsume(ctx, "b")
	third, _ := limiter.CheckAndConsume(ctx, "a")

	assert.True(t, first.Allowed)
	assert.True(t, second.Allowed)
	assert.False(t, third.Allowed)
	assert.Equal(t, 2, limiter.Len())
}

func TestRateLimitService_WindowBoundary(t *testing.T) {
	clock := newFakeClock()
	limiter := NewRateLimitService(1, time.Minute, clock.Now)
	ctx := context.Background()

	decision, _ := limiter.CheckAndConsume(ctx, "c")
	require.True(t, decision.Allowed)
	start, _ := limiter.Record("c")

	// Exactly one window later is still the same window.
	clock.Advance(time.Minute)
	decision, _ = limiter.CheckAndConsume(ctx, "c")
	assert.False(t, decision.Allowed)
	assert.Equal(t, int64(0), decision.RemainingMs)

	clock.Advance(time.Millisecond)
	decision, _ = limiter.CheckAndConsume(ctx, "c")
	assert.True(t, decision.Allowed)

	record, _ := limiter.Record("c")
	assert.Equal(t, 1, record.Count)
	assert.Equal(t, start.WindowStart+time.Minute.Milliseconds()+1, record.WindowStart)
}

func TestRateLimitService_ResetAfterWindow(t *testing.T) {
	clock := newFakeClock()
	limiter := NewRateLimitService(3, time.Minute, clock.Now)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, _ = limiter.CheckAndConsume(ctx, "d")
	}

	clock.Advance(61 * time.Second)
	decision, err := limiter.CheckAndConsume(ctx, "d")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)

	record, _ := limiter.Record("d")
	assert.Equal(t, 1, record.Count)
	assert.Equal(t, clock.Now().UnixMilli(), record.WindowStart)
}

func TestRateLimitService_ConcurrentCallsNeverExceedMax(t *testing.T) {
	limiter := NewRateLimitService(3, time.Minute, newFakeClock().Now)
	ctx := context.Background()

	var allowed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			decision, err := limiter.CheckAndConsume(ctx, "shared")
			if err == nil && decision.Allowed {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(3), allowed.Load())
}

func TestRateLimitService_Sweep(t *testing.T) {
	clock := newFakeClock()
	limiter := NewRateLimitService(3, time.Minute, clock.Now)
	ctx := context.Background()

	_, _ = limiter.CheckAndConsume(ctx, "old")
	clock.Advance(30 * time.Second)
	_, _ = limiter.CheckAndConsume(ctx, "new")
	clock.Advance(31 * time.Second)

	assert.Equal(t, 1, limiter.Sweep())
	assert.Equal(t, 1, limiter.Len())

	_, ok := limiter.Record("old")
	assert.False(t, ok)
	_, ok = limiter.Record("new")
	assert.True(t, ok)
}
