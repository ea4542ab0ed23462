// Package redis provides the connection helper and the login attempt
// limiter backed by it.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// dialTimeout bounds the startup ping when no timeout is configured.
const dialTimeout = 5 * time.Second

// Config carries the settings for the Redis instance that counts login
// attempts.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect opens a client and confirms the server answers before the router
// starts counting login attempts against it.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = dialTimeout
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Addr, DB: cfg.DB})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
