package note

import (
	"context"
	"encoding/json"
)

// Save overwrites the stored collection with notes, in the given order
func (a *Adapter) Save(ctx context.Context, notes []Note) error {
	if notes == nil {
		notes = []Note{}
	}

	data, err := json.Marshal(notes)
	if err != nil {
		return &WriteError{Key: a.key, Err: err}
	}

	if err := a.store.Set(ctx, a.key, data); err != nil {
		return &WriteError{Key: a.key, Err: err}
	}

	return nil
}
