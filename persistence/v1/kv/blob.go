package kv

import (
	"context"
	"fmt"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
	"time"
)

// Blob keeps each key as one object of a gocloud bucket
type Blob struct {
	bucket  *blob.Bucket
	timeout time.Duration
}

var _ Store = (*Blob)(nil)

func NewBlob(bucket *blob.Bucket, timeout time.Duration) *Blob {
	return &Blob{bucket: bucket, timeout: timeout}
}

func (b *Blob) Get(ctx context.Context, key string) ([]byte, bool, error) {
	bCtx, bCancel := withTimeout(ctx, b.timeout)
	defer bCancel()

	data, err := b.bucket.ReadAll(bCtx, key)
	switch {
	case gcerrors.Code(err) == gcerrors.NotFound:
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("failed to read %s from bucket: %w", key, err)
	default:
		return data, true, nil
	}
}

func (b *Blob) Set(ctx context.Context, key string, value []byte) error {
	bCtx, bCancel := withTimeout(ctx, b.timeout)
	defer bCancel()

	opts := &blob.WriterOptions{ContentType: "application/json"}
	if err := b.bucket.WriteAll(bCtx, key, value, opts); err != nil {
		return fmt.Errorf("failed to write %s into bucket: %w", key, err)
	}
	return nil
}
