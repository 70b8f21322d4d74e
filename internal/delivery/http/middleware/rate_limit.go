package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-ats-dashboard/internal/delivery/http/response"
	"go-ats-dashboard/internal/domain"
	"go-ats-dashboard/pkg/audit"
	"go-ats-dashboard/pkg/logger"
	"go-ats-dashboard/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

type RateLimitConfig struct {
	Limit  int
	Window time.Duration
	// KeyFunc identifies the client. Defaults to the client IP.
	KeyFunc func(*gin.Context) string
	// Client is the Redis client for shared counters. Nil uses process memory.
	Client *goredis.Client
	Audit  *audit.Logger
}

type rateLimitEntry struct {
	count   int
	resetAt time.Time
}

// memoryCounters is the fallback when Redis is absent or failing.
type memoryCounters struct {
	mu      sync.Mutex
	entries map[string]*rateLimitEntry
}

func (m *memoryCounters) incr(key string, resetAt, now time.Time) (int, time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		e = &rateLimitEntry{resetAt: resetAt}
		m.entries[key] = e
	}
	e.count++

	// Drop expired entries opportunistically.
	if len(m.entries) > 10000 {
		for k, v := range m.entries {
			if !now.Before(v.resetAt) {
				delete(m.entries, k)
			}
		}
	}
	return e.count, e.resetAt
}

// Atomic increment with TTL on first set.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds. Returns {count, ttl}.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// RateLimitMiddleware enforces a fixed window of Limit requests per client.
// A non-positive Limit disables it.
func RateLimitMiddleware(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.Limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if cfg.Window < time.Second {
		cfg.Window = time.Minute
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	mem := &memoryCounters{entries: map[string]*rateLimitEntry{}}

	return func(c *gin.Context) {
		now := time.Now()
		secs := int64(cfg.Window / time.Second)
		windowIdx := now.Unix() / secs
		windowEnd := time.Unix((windowIdx+1)*secs, 0)
		key := redis.RateLimitKey(cfg.KeyFunc(c), windowIdx)

		var (
			count   int
			resetAt time.Time
			err     error
		)
		if cfg.Client != nil {
			count, resetAt, err = checkRateLimitRedis(c.Request.Context(), cfg.Client, key, cfg.Window, now)
			if err != nil {
				logger.Log.Warn("rate limit falling back to memory", "error", err)
				count, resetAt = mem.incr(key, windowEnd, now)
			}
		} else {
			count, resetAt = mem.incr(key, windowEnd, now)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > cfg.Limit {
			retryAfter := max(int(resetAt.Sub(now).Seconds()), 1)
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			cfg.Audit.RateLimitTriggered(c.Request.Context(), c.ClientIP(), c.GetString(string(domain.KeyRequestID)), c.FullPath())
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(cfg.Limit-count))
		c.Next()
	}
}

func checkRateLimitRedis(ctx context.Context, client *goredis.Client, key string, window time.Duration, now time.Time) (int, time.Time, error) {
	result, err := client.Eval(ctx, rateLimitLuaScript, []string{key}, int(window.Seconds())).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]any)
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), now.Add(time.Duration(ttl) * time.Second), nil
}
