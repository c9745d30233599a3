package note

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"
)

// Load reads the collection stored at the adapter key.
// It never fails hard: a missing key gives an empty collection, an unusable blob gives
// an empty collection and a *ParseError. Malformed entries are dropped one by one.
func (a *Adapter) Load(ctx context.Context) ([]Note, error) {
	data, ok, err := a.store.Get(ctx, a.key)
	if err != nil {
		return []Note{}, &ParseError{Key: a.key, Err: err}
	}
	if !ok {
		return []Note{}, nil
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []Note{}, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return []Note{}, &ParseError{Key: a.key, Err: err}
	}

	notes := make([]Note, 0, len(entries))
	var last int64
	dropped := 0
	for _, entry := range entries {
		n, ok := decode(entry)
		// ids must keep increasing in insertion order
		if !ok || n.Id <= last {
			dropped++
			continue
		}
		last = n.Id
		notes = append(notes, n)
	}

	if dropped > 0 {
		a.log.Warnw("load", "key", a.key, "dropped", dropped, "kept", len(notes))
	}

	return notes, nil
}

func decode(entry json.RawMessage) (Note, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(entry, &fields); err != nil || fields == nil {
		return Note{}, false
	}

	// a quoted number is a string, not an id
	raw := bytes.TrimSpace(fields["id"])
	if len(raw) == 0 || raw[0] == '"' {
		return Note{}, false
	}
	var id json.Number
	if err := json.Unmarshal(raw, &id); err != nil {
		return Note{}, false
	}
	n := Note{}
	var err error
	if n.Id, err = id.Int64(); err != nil || n.Id <= 0 {
		return Note{}, false
	}

	if err := json.Unmarshal(fields["description"], &n.Description); err != nil {
		return Note{}, false
	}
	if strings.TrimSpace(n.Description) == "" {
		return Note{}, false
	}

	if err := json.Unmarshal(fields["title"], &n.Title); err != nil || n.Title == "" {
		n.Title = Untitled
	}
	if err := json.Unmarshal(fields["isImportant"], &n.IsImportant); err != nil {
		n.IsImportant = false
	}
	if err := json.Unmarshal(fields["createdAt"], &n.CreatedAt); err != nil || n.CreatedAt == "" {
		n.CreatedAt = time.UnixMilli(n.Id).UTC().Format(TimeLayout)
	}

	return n, true
}
