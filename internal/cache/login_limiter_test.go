package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// unreachableClient returns a RedisClient whose connections always fail
// fast, for exercising the fail-open path.
func unreachableClient() *RedisClient {
	return &RedisClient{client: redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})}
}

func TestLoginLimiter_FailsOpenWhenRedisUnavailable(t *testing.T) {
	limiter := NewLoginLimiter(unreachableClient())
	ctx := context.Background()

	if limiter.Blocked(ctx, "10.0.0.1") {
		t.Error("expected Blocked to fail open when redis is unreachable")
	}
	if limiter.RegisterFailure(ctx, "10.0.0.1") {
		t.Error("expected RegisterFailure to fail open when redis is unreachable")
	}
}
