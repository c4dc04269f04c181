package history

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	errx "github.com/HKYM39/my-recipe-agents-chat/internal/core/error"
)

// ErrNotFound is returned by a KV when the key has never been written.
var ErrNotFound = errors.New("history: key not found")

// KV is the durable key-value surface the store persists to. Only the
// history package touches it.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// RedisKV backs the persistence surface with a single Redis string key.
type RedisKV struct {
	rdb redis.Cmdable
}

// NewRedisKV wraps a Redis client as a KV.
func NewRedisKV(rdb redis.Cmdable) *RedisKV {
	return &RedisKV{rdb: rdb}
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	v, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", errx.WrapRedis(err)
	}
	return v, nil
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	if err := r.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return errx.WrapRedis(err)
	}
	return nil
}

var _ KV = (*RedisKV)(nil)
