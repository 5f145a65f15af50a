package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Limit: 5 failed attempts per IP per minute.
const (
	loginAttemptLimit  = 5
	loginAttemptWindow = time.Minute
)

// LoginLimiter rate-limits failed login attempts per client IP. Counters
// live in Redis so the limit holds across restarts and replicas. Redis
// being unreachable never locks anyone out; it only disables the limit.
type LoginLimiter struct {
	redis *RedisClient
}

// NewLoginLimiter creates a new LoginLimiter.
func NewLoginLimiter(redis *RedisClient) *LoginLimiter {
	return &LoginLimiter{redis: redis}
}

func (l *LoginLimiter) key(ip string) string {
	return fmt.Sprintf("login:attempts:%s", ip)
}

// RegisterFailure records a failed attempt and reports whether the IP is
// now over the limit. The window starts at the first failure.
func (l *LoginLimiter) RegisterFailure(ctx context.Context, ip string) bool {
	key := l.key(ip)
	count, err := l.redis.Incr(ctx, key)
	if err != nil {
		log.Warn().Err(err).Msg("Login limiter unavailable")
		return false
	}
	if count == 1 {
		if err := l.redis.Expire(ctx, key, loginAttemptWindow); err != nil {
			log.Warn().Err(err).Msg("Failed to set login limiter TTL")
		}
	}
	return count > loginAttemptLimit
}

// Blocked reports whether the IP has exceeded the limit inside the
// current window without recording a new attempt.
func (l *LoginLimiter) Blocked(ctx context.Context, ip string) bool {
	count, err := l.redis.GetInt64(ctx, l.key(ip))
	if err != nil {
		return false
	}
	return count > loginAttemptLimit
}

// Reset clears the counter for an IP after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, ip string) {
	if err := l.redis.Delete(ctx, l.key(ip)); err != nil {
		log.Warn().Err(err).Msg("Failed to reset login limiter")
	}
}
