package services

import (
	"context"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitKey(t *testing.T) {
	key := RateLimitKey("203.0.113.7")

	require.True(t, strings.HasPrefix(key, "guestbook:ratelimit:"))
	digest := strings.TrimPrefix(key, "guestbook:ratelimit:")
	assert.Len(t, digest, 64)
	_, err := hex.DecodeString(digest)
	assert.NoError(t, err)

	assert.Equal(t, key, RateLimitKey("203.0.113.7"))
	assert.NotEqual(t, key, RateLimitKey("203.0.113.8"))
}

func TestRateLimitKey_HidesRawIdentifier(t *testing.T) {
	key := RateLimitKey("user@example.com")
	assert.NotContains(t, key, "example.com")
}

type fakeScripter struct {
	reply interface{}
	err   error

	keys []string
	args []interface{}
}

func (f *fakeScripter) run(keys []string, args []interface{}) *redis.Cmd {
	f.keys = keys
	f.args = args
	return redis.NewCmdResult(f.reply, f.err)
}

func (f *fakeScripter) Eval(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.run(keys, args)
}

func (f *fakeScripter) EvalSha(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.run(keys, args)
}

func (f *fakeScripter) EvalRO(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.run(keys, args)
}

func (f *fakeScripter) EvalShaRO(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.run(keys, args)
}

func (f *fakeScripter) ScriptExists(context.Context, ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceResult([]bool{true}, nil)
}

func (f *fakeScripter) ScriptLoad(context.Context, string) *redis.StringCmd {
	return redis.NewStringResult("", nil)
}

func TestRedisRateLimitService_Decisions(t *testing.T) {
	clock := newFakeClock()
	scripter := &fakeScripter{reply: []interface{}{int64(1), int64(0)}}
	limiter := NewRedisRateLimitService(scripter, 3, time.Minute, clock.Now)

	decision, err := limiter.CheckAndConsume(context.Background(), "fp-redis")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, []string{RateLimitKey("fp-redis")}, scripter.keys)
	assert.Equal(t, []interface{}{clock.Now().UnixMilli(), int64(60_000), 3}, scripter.args)

	scripter.reply = []interface{}{int64(0), int64(42_000)}
	decision, err = limiter.CheckAndConsume(context.Background(), "fp-redis")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, int64(42_000), decision.RemainingMs)
}

func TestRedisRateLimitService_Errors(t *testing.T) {
	scripter := &fakeScripter{err: errors.New("connection refused")}
	limiter := NewRedisRateLimitService(scripter, 3, time.Minute, nil)

	_, err := limiter.CheckAndConsume(context.Background(), "fp-redis")
	assert.ErrorContains(t, err, "connection refused")

	scripter.err = nil
	scripter.reply = []interface{}{int64(1)}
	_, err = limiter.CheckAndConsume(context.Background(), "fp-redis")
	assert.ErrorContains(t, err, "unexpected reply")
}

func newMiniredisLimiter(t *testing.T, clock *fakeClock) (*RedisRateLimitService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisRateLimitService(client, 3, time.Minute, clock.Now), mr
}

func TestRedisRateLimitService_FixedWindowScript(t *testing.T) {
	clock := newFakeClock()
	limiter, mr := newMiniredisLimiter(t, clock)
	ctx := context.Background()
	key := RateLimitKey("fp-lua")
	start := clock.Now().UnixMilli()

	for i := 1; i <= 3; i++ {
		decision, err := limiter.CheckAndConsume(ctx, "fp-lua")
		require.NoError(t, err)
		assert.True(t, decision.Allowed, "attempt %d", i)
		clock.Advance(time.Second)
	}
	assert.Equal(t, "3", mr.HGet(key, "count"))
	assert.Equal(t, strconv.FormatInt(start, 10), mr.HGet(key, "window_start"))
	assert.Equal(t, 2*time.Minute, mr.TTL(key))

	decision, err := limiter.CheckAndConsume(ctx, "fp-lua")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, int64(57_000), decision.RemainingMs)
	assert.Equal(t, "3", mr.HGet(key, "count"))
	assert.Equal(t, strconv.FormatInt(start, 10), mr.HGet(key, "window_start"))

	// Exactly one window after the start is still inside it.
	clock.Advance(57 * time.Second)
	decision, err = limiter.CheckAndConsume(ctx, "fp-lua")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, int64(0), decision.RemainingMs)

	clock.Advance(time.Millisecond)
	decision, err = limiter.CheckAndConsume(ctx, "fp-lua")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, "1", mr.HGet(key, "count"))
	assert.Equal(t, strconv.FormatInt(clock.Now().UnixMilli(), 10), mr.HGet(key, "window_start"))
	assert.Equal(t, 2*time.Minute, mr.TTL(key))
}

func TestRedisRateLimitService_ScriptIdentifiersAreIndependent(t *testing.T) {
	clock := newFakeClock()
	limiter, mr := newMiniredisLimiter(t, clock)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := limiter.CheckAndConsume(ctx, "fp-a")
		require.NoError(t, err)
	}

	decision, err := limiter.CheckAndConsume(ctx, "fp-b")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, "1", mr.HGet(RateLimitKey("fp-b"), "count"))
}

func TestRedisRateLimitService_ExpiredKeyStartsFresh(t *testing.T) {
	clock := newFakeClock()
	limiter, mr := newMiniredisLimiter(t, clock)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := limiter.CheckAndConsume(ctx, "fp-ttl")
		require.NoError(t, err)
	}

	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists(RateLimitKey("fp-ttl")))

	decision, err := limiter.CheckAndConsume(ctx, "fp-ttl")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}
