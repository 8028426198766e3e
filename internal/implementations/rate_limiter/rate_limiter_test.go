package ratelimiter

import (
	"brainbox/internal/core/domain/logging"
	ratelimiter "brainbox/internal/core/domain/rate_limiter"
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	rawURL := os.Getenv("TEST_REDIS_URL")
	if rawURL == "" {
		t.Skip("TEST_REDIS_URL is not set.")
	}
	opts, err := redis.ParseURL(rawURL)
	require.Nil(t, err)
	client := redis.NewClient(opts)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisRateLimiter(t *testing.T) {
	client := newTestRedisClient(t)
	now := time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)
	limiter := NewRedis(client, logging.NewFakeLogger(), func() time.Time { return now })
	limit := ratelimiter.Limit{Value: 2, Interval: ratelimiter.Minute}
	key := "chat::test-" + strconv.FormatInt(time.Now().UnixNano(), 10)
	ctx := context.Background()

	require.True(t, limiter.CheckLimit(ctx, key, limit).IsAllowed)
	require.True(t, limiter.CheckLimit(ctx, key, limit).IsAllowed)
	require.False(t, limiter.CheckLimit(ctx, key, limit).IsAllowed)

	now = now.Add(time.Minute)
	require.True(t, limiter.CheckLimit(ctx, key, limit).IsAllowed)
}

func TestRedisRateLimiterUnavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	log := logging.NewFakeLogger()
	limiter := NewRedis(client, log, time.Now)

	result := limiter.CheckLimit(
		context.Background(),
		"chat::127.0.0.1",
		ratelimiter.Limit{Value: 1, Interval: ratelimiter.Minute},
	)

	require.True(t, result.IsAllowed)
	require.Equal(t, 1, log.CountWithLevel(logging.ERROR))
}

func TestRedisRateLimiterCanceledContext(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()
	limiter := NewRedis(client, logging.NewFakeLogger(), time.Now)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := limiter.CheckLimit(ctx, "chat::x", ratelimiter.Limit{Value: 1, Interval: ratelimiter.Minute})

	require.False(t, result.IsAllowed)
}
