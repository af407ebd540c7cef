// Package ratelimit implements a fixed-window request counter in Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

type Limiter struct {
	client counter
	prefix string
	limit  int64
	window time.Duration
}

func NewLimiter(client counter, prefix string, limit int64, window time.Duration) *Limiter {
	return &Limiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

// Allow counts one hit for key in the current window. On a Redis error it
// returns true together with the error; callers decide whether to fail open.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := time.Now().UnixNano() / int64(l.window)
	k := fmt.Sprintf("%s:%s:%d", l.prefix, key, bucket)

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return true, fmt.Errorf("incr %s: %w", k, err)
	}

	if n == 1 {
		if err = l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return true, fmt.Errorf("expire %s: %w", k, err)
		}
	}

	return n <= l.limit, nil
}
