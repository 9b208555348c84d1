// Package throttle bounds failed login attempts per client key.
package throttle

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/deepak92201/Portfolio/config"
)

var ErrTooManyAttempts = errors.New("too many failed login attempts")

// Limiter counts login attempts per key. Reserve atomically takes one attempt
// and reports whether it is within the limit, so concurrent callers cannot
// all pass the check. Reset clears the key after a successful login.
type Limiter interface {
	Reserve(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

// New picks the Redis limiter when a client is given, the in-process one
// otherwise. A non-positive MaxAttempts disables throttling.
func New(cfg config.LoginConfig, client *redis.Client) Limiter {
	if cfg.MaxAttempts <= 0 {
		return Disabled{}
	}
	window := time.Duration(cfg.WindowMinutes) * time.Minute
	if client != nil {
		return NewRedisLimiter(client, cfg.MaxAttempts, window)
	}
	return NewLocalLimiter(cfg.MaxAttempts, window)
}

// Disabled never throttles.
type Disabled struct{}

func (Disabled) Reserve(context.Context, string) (bool, error) { return true, nil }
func (Disabled) Reset(context.Context, string) error           { return nil }
