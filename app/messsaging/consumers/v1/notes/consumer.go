package notes

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/ribgsilva/sticky-notes/business/v1/note"
	"github.com/ribgsilva/sticky-notes/sys"
	"gocloud.dev/pubsub"
)

// Consume applies the create and delete events of sub to store until ctx is done.
// Messages already received are applied in full even when ctx is cancelled meanwhile.
func Consume(ctx context.Context, sub *pubsub.Subscription, store *note.Store, maxWorkers int) error {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	workers := make(chan int, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- 1
		go func(m *pubsub.Message) {
			defer func() { <-workers }()

			// nothing was applied, let it be redelivered
			if err := apply(store, m.Body); errors.Is(err, note.ErrNotInitialized) && m.Nackable() {
				m.Nack()
				return
			}
			m.Ack()
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// apply runs on its own context, the storage drivers bound each call with their operation timeout
func apply(store *note.Store, body []byte) error {
	logger := sys.R.Log
	ctx := context.Background()

	logger.Infof("message received: %s", string(body))
	var e note.Event
	if err := json.Unmarshal(body, &e); err != nil {
		logger.Error("failed to parse body: ", err)
		return err
	}
	marshal, _ := json.Marshal(e.Data)

	switch e.Type {
	case "create":
		var c note.NewNote
		if err := json.Unmarshal(marshal, &c); err != nil {
			logger.Errorf("failed to parse create event %+v: err: %s", e.Data, err)
			return err
		}
		created, err := store.Create(ctx, c)
		if err != nil {
			logger.Errorf("failed to create event %+v: err: %s", e.Data, err)
			return err
		}
		logger.Infow("create", "id", created.Id)
	case "delete":
		var d note.DeleteNote
		if err := json.Unmarshal(marshal, &d); err != nil {
			logger.Errorf("failed to parse delete event %+v: err: %s", e.Data, err)
			return err
		}
		if err := store.Delete(ctx, d.Id); err != nil {
			logger.Errorf("failed to delete event %+v: err: %s", e.Data, err)
			return err
		}
		logger.Infow("delete", "id", d.Id)
	default:
		logger.Error("unknown event type: ", e.Type)
	}
	return nil
}
