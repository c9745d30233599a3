// Package kv provides the durable key-value facilities the notes blob can be kept in.
package kv

import (
	"context"
	"time"
)

// Store is a durable key-value facility. Get reports false when the key was never written.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
