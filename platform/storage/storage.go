// Package storage opens the durable key-value facility selected by STORAGE_DRIVER.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/sticky-notes/persistence/v1/kv"
	"github.com/ribgsilva/sticky-notes/persistence/v1/note"
	"github.com/ribgsilva/sticky-notes/platform/env"
	"github.com/ribgsilva/sticky-notes/sys"
	"go.uber.org/zap"
	"gocloud.dev/blob"

	_ "github.com/go-sql-driver/mysql"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

const (
	DriverRedis = "redis"
	DriverMySQL = "mysql"
	DriverBlob  = "blob"
)

// LoadConfigs reads every storage related env var into sys.Configs
func LoadConfigs(log *zap.SugaredLogger) {
	sys.Configs.Storage.Driver = env.OrDefault(log, "STORAGE_DRIVER", DriverRedis)
	sys.Configs.Storage.Key = env.OrDefault(log, "STORAGE_KEY", note.DefaultKey)
	sys.Configs.Storage.OperationTimeout = env.DurationDefault(log, "STORAGE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@localhost:3306/note")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Cache.ConnectionURL = env.OrDefault(log, "CACHE_CONNECTION_URL", "localhost:6379")
	sys.Configs.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	sys.Configs.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	sys.Configs.Blob.BucketURL = env.OrDefault(log, "BLOB_BUCKET_URL", "file:///var/lib/sticky-notes")
}

// Open connects to the configured driver, registers the connection in sys.R and
// returns the store with a func releasing it
func Open(ctx context.Context, log *zap.SugaredLogger) (kv.Store, func(), error) {
	switch sys.Configs.Storage.Driver {
	case DriverRedis:
		return openRedis(ctx, log)
	case DriverMySQL:
		return openMySQL(ctx, log)
	case DriverBlob:
		return openBlob(ctx, log)
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", sys.Configs.Storage.Driver)
	}
}

// NewAdapter opens the configured storage and wraps it in the notes blob adapter
func NewAdapter(ctx context.Context, log *zap.SugaredLogger) (*note.Adapter, func(), error) {
	store, closeFn, err := Open(ctx, log)
	if err != nil {
		return nil, nil, err
	}
	return note.NewAdapter(log, store, sys.Configs.Storage.Key), closeFn, nil
}

func openRedis(ctx context.Context, log *zap.SugaredLogger) (kv.Store, func(), error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     sys.Configs.Cache.ConnectionURL,
		Username: sys.Configs.Cache.User,
		Password: sys.Configs.Cache.Pass,
	})
	rdsCtx, rdsCancel := context.WithTimeout(ctx, sys.Configs.Cache.PingTimeout)
	defer rdsCancel()
	if err := rdb.Ping(rdsCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("could not connect to redis: %w", err)
	}
	sys.R.Cache = rdb

	closeFn := func() {
		if err := rdb.Close(); err != nil {
			log.Errorf("could not close redis conn gracefully: %s", err)
		}
	}
	return kv.NewRedis(rdb, sys.Configs.Cache.OperationTimeout), closeFn, nil
}

func openMySQL(ctx context.Context, log *zap.SugaredLogger) (kv.Store, func(), error) {
	db, err := sql.Open("mysql", sys.Configs.Database.ConnectionURL)
	if err != nil {
		return nil, nil, fmt.Errorf("error to connect to database: %w", err)
	}
	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.PingTimeout)
	defer dbCancel()
	if err := db.PingContext(dbCtx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("could not connect to database: %w", err)
	}
	sys.R.Database = db

	closeFn := func() {
		if err := db.Close(); err != nil {
			log.Errorf("could not close db conn gracefully: %s", err)
		}
	}
	return kv.NewSQL(db, sys.Configs.Database.OperationTimeout), closeFn, nil
}

func openBlob(ctx context.Context, log *zap.SugaredLogger) (kv.Store, func(), error) {
	bucket, err := blob.OpenBucket(ctx, sys.Configs.Blob.BucketURL)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open bucket %s: %w", sys.Configs.Blob.BucketURL, err)
	}
	sys.R.Bucket = bucket

	closeFn := func() {
		if err := bucket.Close(); err != nil {
			log.Errorf("could not close bucket gracefully: %s", err)
		}
	}
	return kv.NewBlob(bucket, sys.Configs.Storage.OperationTimeout), closeFn, nil
}
