package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/glowline/salon-scheduler/internal/config"
	"github.com/glowline/salon-scheduler/internal/session"
)

type Redis struct {
	rdb *redis.Client
}

func NewRedis(cfg *config.Config) *Redis {
	return &Redis{
		rdb: redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}),
	}
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	val, err := r.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *Redis) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.rdb.Set(ctx, key, value, ttl).Err()
}

func (r *Redis) Del(ctx context.Context, keys ...string) error {
	return r.rdb.Del(ctx, keys...).Err()
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

// Compile-time check
var _ session.Cache = (*Redis)(nil)
