package tests

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/sticky-notes/app/messsaging/consumers/v1/notes"
	"github.com/ribgsilva/sticky-notes/business/v1/note"
	"github.com/ribgsilva/sticky-notes/persistence/v1/kv"
	pnote "github.com/ribgsilva/sticky-notes/persistence/v1/note"
	env2 "github.com/ribgsilva/sticky-notes/platform/env"
	"github.com/ribgsilva/sticky-notes/platform/logger"
	"github.com/ribgsilva/sticky-notes/sys"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
	"os"
	"testing"
	"time"
)

type NoteTests struct {
	topic *pubsub.Topic
	store *note.Store
	cache *miniredis.Miniredis
}

func TestNote(t *testing.T) {
	log, err := logger.New("Sticky-Notes-Messaging-Tests")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	// =======================================================================================================
	// Mocks

	// miniredis
	s := miniredis.RunT(t)

	// =======================================================================================================
	// Setup configs
	sys.Configs.Storage.Key = env2.OrDefault(log, "STORAGE_KEY", pnote.DefaultKey)
	sys.Configs.Cache.ConnectionURL = s.Addr()
	sys.Configs.Cache.OperationTimeout = env2.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	sys.Configs.Messaging.ShutdownTimeout = env2.DurationDefault(log, "MESSAGING_SHUTDOWN_TIMEOUT", "10s")

	// =======================================================================================================
	// Setup resources

	// logger
	sys.R.Log = log

	// redis
	rdb := redis.NewClient(&redis.Options{
		Addr: sys.Configs.Cache.ConnectionURL,
	})
	defer func() {
		_ = rdb.Close()
	}()
	sys.R.Cache = rdb

	adapter := pnote.NewAdapter(log, kv.NewRedis(rdb, sys.Configs.Cache.OperationTimeout), sys.Configs.Storage.Key)
	store := note.NewStore(log, adapter)
	if err := store.Initialize(context.Background()); err != nil {
		t.Fatalf("store.Initialize: %s", err)
	}

	// =======================================================================================================
	// Messaging configuration

	topic := mempubsub.NewTopic()
	defer func() {
		_ = topic.Shutdown(context.Background())
	}()
	subscription := mempubsub.NewSubscription(topic, 1*time.Second)

	defer func() {
		stdCtx, stdCancel := context.WithTimeout(context.Background(), sys.Configs.Messaging.ShutdownTimeout)
		defer stdCancel()

		_ = subscription.Shutdown(stdCtx)
	}()

	withCancel, cancelFunc := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- notes.Consume(withCancel, subscription, store, 1)
	}()
	defer func() {
		cancelFunc()
		if err := <-done; err != nil {
			t.Errorf("listener error: %s", err)
		}
	}()

	// =======================================================================================================
	// Run tests

	noteTests := NoteTests{topic: topic, store: store, cache: s}

	noteTests.testCrud(t)
}

func (nt *NoteTests) testCrud(t *testing.T) {
	created := nt.testInsertSuccess(t)
	nt.testInsertInvalidIgnored(t)
	nt.testDeleteSuccess(t, created)
}

func (nt *NoteTests) send(t *testing.T, event note.Event) {
	t.Helper()
	marshal, err := json.Marshal(event)
	if err != nil {
		t.Fatal("failed to parse event body: ", err)
	}

	if err := nt.topic.Send(context.Background(), &pubsub.Message{
		Body: marshal,
	}); err != nil {
		t.Fatal("failed to post message to topic: ", err)
	}
}

// waitFor polls the store until cond holds, messages are applied asynchronously
func (nt *NoteTests) waitFor(t *testing.T, what string, cond func([]note.Note) bool) []note.Note {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for {
		list := nt.store.List()
		if cond(list) {
			return list
		}
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s, notes: %v", what, list)
		}
		time.Sleep(50 * time.Millisecond)
	}
}

func (nt *NoteTests) testInsertSuccess(t *testing.T) note.Note {
	nt.send(t, note.Event{
		Type: "create",
		Data: note.NewNote{
			Title:       "other",
			Description: "other text",
		},
	})

	list := nt.waitFor(t, "the created note", func(l []note.Note) bool { return len(l) == 1 })
	found := list[0]

	if found.Title != "other" {
		t.Fatalf("Test testInsertSuccess: should have received \"other\" as title: %v", found)
	}
	if found.Description != "other text" {
		t.Fatalf("Test testInsertSuccess: should have received \"other text\" as description: %v", found)
	}
	if !nt.cache.Exists(sys.Configs.Storage.Key) {
		t.Fatal("Test testInsertSuccess: should have persisted the notes")
	}
	return found
}

func (nt *NoteTests) testInsertInvalidIgnored(t *testing.T) {
	nt.send(t, note.Event{Type: "create", Data: note.NewNote{Title: "blank", Description: " "}})
	nt.send(t, note.Event{Type: "unknown", Data: "whatever"})
	// a valid event after the invalid ones proves they were consumed
	nt.send(t, note.Event{Type: "create", Data: note.NewNote{Description: "marker"}})

	list := nt.waitFor(t, "the marker note", func(l []note.Note) bool { return len(l) == 2 })
	if list[1].Description != "marker" || list[1].Title != note.Untitled {
		t.Fatalf("Test testInsertInvalidIgnored: unexpected notes: %v", list)
	}
}

func (nt *NoteTests) testDeleteSuccess(t *testing.T, created note.Note) {
	nt.send(t, note.Event{Type: "delete", Data: note.DeleteNote{Id: created.Id}})

	list := nt.waitFor(t, "the deleted note", func(l []note.Note) bool { return len(l) == 1 })
	if list[0].Id == created.Id {
		t.Fatalf("Test testDeleteSuccess: should have deleted %d: %v", created.Id, list)
	}

	raw, err := nt.cache.Get(sys.Configs.Storage.Key)
	if err != nil {
		t.Fatalf("Test testDeleteSuccess: stored notes: %s", err)
	}
	var stored []pnote.Note
	if err := json.Unmarshal([]byte(raw), &stored); err != nil || len(stored) != 1 {
		t.Fatalf("Test testDeleteSuccess: storage should match memory: %s", raw)
	}
}
