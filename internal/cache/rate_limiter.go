package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter counts requests per client in fixed windows
type RateLimiter interface {
	// Allow records one request and reports whether it fits in the current window
	Allow(ctx context.Context, clientID string) (bool, error)
}

type rateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewRateLimiter creates a Redis-backed limiter allowing limit requests per window
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) RateLimiter {
	return &rateLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
		now:    time.Now,
	}
}

func (l *rateLimiter) key(clientID string) string {
	bucket := l.now().UnixNano() / int64(l.window)
	return fmt.Sprintf("analyze:rl:%s:%d", clientID, bucket)
}

func (l *rateLimiter) Allow(ctx context.Context, clientID string) (bool, error) {
	key := l.key(clientID)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= l.limit, nil
}
