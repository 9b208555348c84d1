package throttle

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const failKeyPrefix = "portfolio:login:fail:" // portfolio:login:fail:{client}

// reserveScript increments the counter and makes sure it carries a TTL in the
// same step, so a counter can never outlive its window.
var reserveScript = redis.NewScript(`
local n = redis.call('INCR', KEYS[1])
if redis.call('PTTL', KEYS[1]) < 0 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return n
`)

// RedisLimiter keeps a fixed-window attempt counter per key, shared by every
// instance pointed at the same Redis. The window starts at the first attempt.
type RedisLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, max int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, max: max, window: window}
}

func (l *RedisLimiter) key(k string) string {
	return failKeyPrefix + k
}

func (l *RedisLimiter) Reserve(ctx context.Context, key string) (bool, error) {
	n, err := reserveScript.Run(ctx, l.client, []string{l.key(key)}, l.window.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("reserve login attempt: %w", err)
	}
	return n <= int64(l.max), nil
}

func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.key(key)).Err(); err != nil {
		return fmt.Errorf("reset login attempts: %w", err)
	}
	return nil
}
