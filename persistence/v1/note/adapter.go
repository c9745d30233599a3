package note

import (
	"github.com/ribgsilva/sticky-notes/persistence/v1/kv"
	"go.uber.org/zap"
)

// Adapter keeps the whole note collection as one json blob under a single key
type Adapter struct {
	log   *zap.SugaredLogger
	store kv.Store
	key   string
}

func NewAdapter(log *zap.SugaredLogger, store kv.Store, key string) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	return &Adapter{
		log:   log,
		store: store,
		key:   key,
	}
}
