package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxFailures = 10
	defaultWindow      = 15 * time.Minute
)

// LoginThrottle counts failed login attempts per email in Redis.
// Key format: login_fail:<email>, expiring after the configured window.
type LoginThrottle struct {
	client      *redis.Client
	maxFailures int64
	window      time.Duration
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
// Non-positive limits fall back to defaults.
func NewLoginThrottle(client *redis.Client, maxFailures int, window time.Duration) *LoginThrottle {
	if maxFailures <= 0 {
		maxFailures = defaultMaxFailures
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginThrottle{client: client, maxFailures: int64(maxFailures), window: window}
}

// Locked reports whether the email has reached the failure budget inside
// the current window.
func (t *LoginThrottle) Locked(ctx context.Context, email string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(email)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= t.maxFailures, nil
}

// RecordFailure increments the failure counter and refreshes its expiry.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) error {
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, t.key(email))
	pipe.Expire(ctx, t.key(email), t.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("throttle record failure: %w", err)
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	if err := t.client.Del(ctx, t.key(email)).Err(); err != nil {
		return fmt.Errorf("throttle reset: %w", err)
	}
	return nil
}

func (t *LoginThrottle) key(email string) string {
	return "login_fail:" + email
}
