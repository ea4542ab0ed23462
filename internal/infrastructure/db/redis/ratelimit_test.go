package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, max int) (*LoginLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewLoginLimiter(client, max), mr
}

func TestLoginLimiter_AllowsWithinBudget(t *testing.T) {
	limiter, _ := newTestLimiter(t, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "10.0.0.1")
		if err != nil {
			t.Fatalf("attempt %d: unexpected error: %v", i+1, err)
		}
		if !ok {
			t.Fatalf("attempt %d should be within budget", i+1)
		}
	}
}

func TestLoginLimiter_DeniesOverBudget(t *testing.T) {
	limiter, _ := newTestLimiter(t, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if ok, _ := limiter.Allow(ctx, "10.0.0.2"); !ok {
			t.Fatalf("attempt %d should be within budget", i+1)
		}
	}

	ok, err := limiter.Allow(ctx, "10.0.0.2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("third attempt should be over budget")
	}
}

func TestLoginLimiter_KeysAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1)
	ctx := context.Background()

	if ok, _ := limiter.Allow(ctx, "10.0.0.3"); !ok {
		t.Fatal("first key should be within budget")
	}
	if ok, _ := limiter.Allow(ctx, "10.0.0.4"); !ok {
		t.Fatal("second key must not share the first key's counter")
	}
}

func TestLoginLimiter_WindowResets(t *testing.T) {
	limiter, mr := newTestLimiter(t, 1)
	ctx := context.Background()

	if ok, _ := limiter.Allow(ctx, "10.0.0.5"); !ok {
		t.Fatal("first attempt should be within budget")
	}
	if ok, _ := limiter.Allow(ctx, "10.0.0.5"); ok {
		t.Fatal("second attempt should be over budget")
	}

	mr.FastForward(2 * time.Minute)

	ok, err := limiter.Allow(ctx, "10.0.0.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("attempt after window expiry should be within budget again")
	}
}

func TestLoginLimiter_FirstAttemptSetsTTL(t *testing.T) {
	limiter, mr := newTestLimiter(t, 3)

	if _, err := limiter.Allow(context.Background(), "10.0.0.6"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ttl := mr.TTL("rl:login:10.0.0.6"); ttl <= 0 {
		t.Fatalf("counter key must carry a TTL, got %v", ttl)
	}
}

func TestLoginLimiter_RedisErrorSurfaces(t *testing.T) {
	limiter, mr := newTestLimiter(t, 3)
	mr.SetError("LOADING Redis is loading the dataset in memory")

	if _, err := limiter.Allow(context.Background(), "10.0.0.7"); err == nil {
		t.Fatal("expected redis error to surface to the caller")
	}
}

func TestLoginLimiter_DefaultBudget(t *testing.T) {
	limiter, _ := newTestLimiter(t, 0)
	if limiter.max != defaultMaxAttempts {
		t.Fatalf("expected default budget %d, got %d", defaultMaxAttempts, limiter.max)
	}
}
