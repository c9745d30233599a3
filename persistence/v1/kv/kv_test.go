package kv

import (
	"context"
	"database/sql"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/sticky-notes/persistence/v1/schema"
	"github.com/ribgsilva/sticky-notes/sys"
	"gocloud.dev/blob/memblob"
	"strings"
	"testing"
	"time"

	_ "github.com/proullon/ramsql/driver"
)

func TestRedis(t *testing.T) {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer func() {
		_ = rdb.Close()
	}()

	store := NewRedis(rdb, 2*time.Second)
	testStore(t, store)

	if ttl := s.TTL("notes"); ttl != 0 {
		t.Fatalf("redis: value should not expire, got ttl %s", ttl)
	}
}

func TestRedisUnavailable(t *testing.T) {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr(), MaxRetries: -1})
	defer func() {
		_ = rdb.Close()
	}()
	s.Close()

	store := NewRedis(rdb, time.Second)
	if err := store.Set(context.Background(), "notes", []byte("[]")); err == nil {
		t.Fatal("redis: expected set to fail with the server down")
	}
	if _, _, err := store.Get(context.Background(), "notes"); err == nil {
		t.Fatal("redis: expected get to fail with the server down")
	}
}

func TestSQL(t *testing.T) {
	db, err := sql.Open("ramsql", "TestKVSQL")
	if err != nil {
		t.Fatalf("sql.Open: %s", err)
	}
	defer func() {
		_ = db.Close()
	}()
	sys.R.Database = db

	if err := schema.Create(context.Background()); err != nil {
		t.Fatalf("schema.Create: %s", err)
	}
	defer schema.Drop(context.Background())

	testStore(t, NewSQL(db, 2*time.Second))
}

func TestBlob(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer func() {
		_ = bucket.Close()
	}()

	testStore(t, NewBlob(bucket, 2*time.Second))
}

func TestBlobTimeout(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer func() {
		_ = bucket.Close()
	}()

	store := NewBlob(bucket, time.Nanosecond)
	time.Sleep(time.Millisecond)
	if err := store.Set(context.Background(), "notes", []byte("[]")); err == nil {
		t.Fatal("blob: expected set to fail once the operation timeout is exceeded")
	}
	if ok, _ := bucket.Exists(context.Background(), "notes"); ok {
		t.Fatal("blob: a timed out write must not be stored")
	}
}

func testStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "notes"); err != nil || ok {
		t.Fatalf("get of missing key: expected (false, nil), got (%v, %v)", ok, err)
	}

	if err := store.Set(ctx, "notes", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("first set: %s", err)
	}
	if err := store.Set(ctx, "notes", []byte(`[{"id":2}]`)); err != nil {
		t.Fatalf("second set: %s", err)
	}

	got, ok, err := store.Get(ctx, "notes")
	if err != nil || !ok {
		t.Fatalf("get after set: expected (true, nil), got (%v, %v)", ok, err)
	}
	if string(got) != `[{"id":2}]` {
		t.Fatalf("get after set: second write should win, got %s", got)
	}

	if _, ok, _ := store.Get(ctx, "other"); ok {
		t.Fatal("keys must not leak into each other")
	}
}

func TestLargeValue(t *testing.T) {
	// bigger than a MySQL TEXT column
	value := []byte(`[{"id":1,"description":"` + strings.Repeat("x", 70*1024) + `"}]`)

	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer func() {
		_ = rdb.Close()
	}()

	db, err := sql.Open("ramsql", "TestKVLargeValue")
	if err != nil {
		t.Fatalf("sql.Open: %s", err)
	}
	defer func() {
		_ = db.Close()
	}()
	sys.R.Database = db
	if err := schema.Create(context.Background()); err != nil {
		t.Fatalf("schema.Create: %s", err)
	}
	defer schema.Drop(context.Background())

	bucket := memblob.OpenBucket(nil)
	defer func() {
		_ = bucket.Close()
	}()

	stores := map[string]Store{
		"redis": NewRedis(rdb, 2*time.Second),
		"sql":   NewSQL(db, 2*time.Second),
		"blob":  NewBlob(bucket, 2*time.Second),
	}
	for name, store := range stores {
		if err := store.Set(context.Background(), "notes", value); err != nil {
			t.Fatalf("%s: set of %d bytes: %s", name, len(value), err)
		}
		got, ok, err := store.Get(context.Background(), "notes")
		if err != nil || !ok {
			t.Fatalf("%s: get after set: expected (true, nil), got (%v, %v)", name, ok, err)
		}
		if len(got) != len(value) {
			t.Fatalf("%s: value was truncated, expected %d bytes, got %d", name, len(value), len(got))
		}
	}
}
