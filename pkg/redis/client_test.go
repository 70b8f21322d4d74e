package redis_test

import (
	"testing"

	"go-ats-dashboard/pkg/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	t.Run("Should parse host, db and password", func(t *testing.T) {
		opts, err := redis.Options(redis.Config{URL: "redis://:secret@cache.local:6380/2"})
		require.NoError(t, err)
		assert.Equal(t, "cache.local:6380", opts.Addr)
		assert.Equal(t, "secret", opts.Password)
		assert.Equal(t, 2, opts.DB)
		assert.Nil(t, opts.TLSConfig)
	})

	t.Run("Should default port and enable TLS for rediss", func(t *testing.T) {
		opts, err := redis.Options(redis.Config{URL: "rediss://cache.local", Password: "override"})
		require.NoError(t, err)
		assert.Equal(t, "cache.local:6379", opts.Addr)
		assert.Equal(t, "override", opts.Password)
		assert.NotNil(t, opts.TLSConfig)
	})

	t.Run("Should reject empty and foreign URLs", func(t *testing.T) {
		_, err := redis.Options(redis.Config{})
		assert.Error(t, err)
		_, err = redis.Options(redis.Config{URL: "http://cache.local"})
		assert.Error(t, err)
	})
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "ats:ratelimit:10.0.0.1:42", redis.RateLimitKey("10.0.0.1", 42))
	assert.Equal(t, "ats:dashboard:stats", redis.StatsKey)
}
