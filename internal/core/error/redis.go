package errx

import (
	"errors"

	"github.com/redis/go-redis/v9"
)

const RedisErrorMessage = "redis operation failed"

// WrapRedis maps Redis errors to the unified AppError. redis.Nil is a cache
// miss, not a failure; callers handle it before wrapping.
func WrapRedis(err error) *AppError {
	if err == nil || errors.Is(err, redis.Nil) {
		return nil
	}
	return New(err, KindUnavailable, RedisErrorMessage)
}
