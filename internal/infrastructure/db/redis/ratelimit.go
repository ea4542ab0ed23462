package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts = 5
	limiterWindow      = time.Minute
)

// LoginLimiter counts login attempts per source key in a fixed Redis window.
// Key format: rl:login:<key>
type LoginLimiter struct {
	client *redis.Client
	max    int64
}

// NewLoginLimiter creates a LoginLimiter allowing maxPerMinute attempts per
// key. If maxPerMinute <= 0, defaultMaxAttempts is used.
func NewLoginLimiter(client *redis.Client, maxPerMinute int) *LoginLimiter {
	if maxPerMinute <= 0 {
		maxPerMinute = defaultMaxAttempts
	}
	return &LoginLimiter{client: client, max: int64(maxPerMinute)}
}

// Allow records one attempt for key and reports whether it is still within
// the window budget. Redis errors are returned to the caller, which is
// expected to fail open.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	rk := fmt.Sprintf("rl:login:%s", key)

	cnt, err := l.client.Incr(ctx, rk).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if cnt == 1 {
		// Without the TTL the counter would never reset, locking the key
		// out permanently.
		if err := l.client.Expire(ctx, rk, limiterWindow).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return cnt <= l.max, nil
}
