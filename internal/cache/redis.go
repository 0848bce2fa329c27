package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRemote stores cache entries in redis so replicas share ranked sets.
type RedisRemote struct {
	client redis.Cmdable
	prefix string
}

// NewRedisRemote wraps a redis client. Keys are namespaced with prefix.
func NewRedisRemote(client redis.Cmdable, prefix string) *RedisRemote {
	return &RedisRemote{client: client, prefix: prefix}
}

func (r *RedisRemote) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (r *RedisRemote) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, r.prefix+key, value, ttl).Err()
}
