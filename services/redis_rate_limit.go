package services

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/lac-hong-legacy/guestbook_api/dto"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/blake2b"
)

const rateLimitKeyPrefix = "guestbook:ratelimit:"

// fixedWindowScript mirrors RateLimitService.CheckAndConsume so several API
// instances share one window per identifier. Returns {allowed, remaining_ms}.
var fixedWindowScript = redis.NewScript(`
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local max = tonumber(ARGV[3])
local rec = redis.call('HMGET', KEYS[1], 'count', 'window_start')
local count = tonumber(rec[1])
local start = tonumber(rec[2])
if count == nil or start == nil or now - start > window then
  redis.call('HSET', KEYS[1], 'count', 1, 'window_start', now)
  redis.call('PEXPIRE', KEYS[1], window * 2)
  return {1, 0}
end
if count >= max then
  return {0, window - (now - start)}
end
redis.call('HINCRBY', KEYS[1], 'count', 1)
return {1, 0}
`)

// RedisRateLimitService keeps the fixed windows in redis. Keys expire after
// two windows, so idle identifiers do not accumulate.
type RedisRateLimitService struct {
	appContext.DefaultService

	redisSvc *RedisService
	client   redis.Scripter

	maxPerWindow int
	window       time.Duration
	now          func() time.Time
}

const REDIS_RATE_LIMIT_SVC = "redis_rate_limit_svc"

func NewRedisRateLimitService(client redis.Scripter, maxPerWindow int, window time.Duration, now func() time.Time) *RedisRateLimitService {
	if now == nil {
		now = time.Now
	}
	return &RedisRateLimitService{
		client:       client,
		maxPerWindow: maxPerWindow,
		window:       window,
		now:          now,
	}
}

func (svc RedisRateLimitService) Id() string {
	return REDIS_RATE_LIMIT_SVC
}

func (svc *RedisRateLimitService) Configure(ctx *appContext.Context) error {
	svc.maxPerWindow = getEnvInt("RATE_LIMIT_MAX", DefaultRateLimitMax)
	svc.window = getEnvDuration("RATE_LIMIT_WINDOW", DefaultRateLimitWindow)
	svc.now = time.Now
	return svc.DefaultService.Configure(ctx)
}

func (svc *RedisRateLimitService) Start() error {
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	svc.client = svc.redisSvc.GetClient()

	log.WithFields(log.Fields{
		"max_per_window": svc.maxPerWindow,
		"window":         svc.window,
	}).Info("Redis rate limiter ready")
	return nil
}

func (svc *RedisRateLimitService) CheckAndConsume(ctx context.Context, identifier string) (*dto.RateLimitDecision, error) {
	result, err := fixedWindowScript.Run(ctx, svc.client,
		[]string{RateLimitKey(identifier)},
		svc.now().UnixMilli(), svc.window.Milliseconds(), svc.maxPerWindow,
	).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("rate limit script: %w", err)
	}
	if len(result) != 2 {
		return nil, fmt.Errorf("rate limit script: unexpected reply %v", result)
	}

	return &dto.RateLimitDecision{
		Allowed:     result[0] == 1,
		RemainingMs: result[1],
	}, nil
}

// RateLimitKey hashes the client-supplied identifier so arbitrary strings map
// to fixed-length keys.
func RateLimitKey(identifier string) string {
	sum := blake2b.Sum256([]byte(identifier))
	return rateLimitKeyPrefix + hex.EncodeToString(sum[:])
}
