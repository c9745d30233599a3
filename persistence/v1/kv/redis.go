package kv

import (
	"context"
	"fmt"
	"github.com/go-redis/redis/v8"
	"time"
)

// Redis keeps values as plain redis strings without expiration
type Redis struct {
	client  *redis.Client
	timeout time.Duration
}

var _ Store = (*Redis)(nil)

func NewRedis(client *redis.Client, timeout time.Duration) *Redis {
	return &Redis{client: client, timeout: timeout}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	tcCtx, tcCancel := withTimeout(ctx, r.timeout)
	defer tcCancel()

	data, err := r.client.Get(tcCtx, key).Bytes()
	switch {
	case err == redis.Nil:
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("failed to get %s from redis: %w", key, err)
	default:
		return data, true, nil
	}
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	tcCtx, tcCancel := withTimeout(ctx, r.timeout)
	defer tcCancel()

	if err := r.client.Set(tcCtx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s into redis: %w", key, err)
	}
	return nil
}
