package mirror

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Redis mirrors snapshots into a Redis instance as plain string values.
// Keys carry no TTL: a snapshot lives until the next write replaces it.
type Redis struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

func (r *Redis) Load(ctx context.Context, key string) ([]byte, error) {
	b, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *Redis) Save(ctx context.Context, key string, data []byte) error {
	return r.rdb.Set(ctx, key, data, 0).Err()
}
