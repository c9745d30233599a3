package note

import (
	"context"
	"github.com/ribgsilva/sticky-notes/persistence/v1/note"
	"go.uber.org/zap"
	"sort"
	"strings"
	"sync"
	"time"
)

// Persister loads and saves the whole collection at once
type Persister interface {
	Load(ctx context.Context) ([]note.Note, error)
	Save(ctx context.Context, notes []note.Note) error
}

// Store is the single source of truth of the notes of a session. Every operation
// holds the lock until the collection has been saved, so operations never interleave.
type Store struct {
	mu          sync.Mutex
	log         *zap.SugaredLogger
	persister   Persister
	now         func() time.Time
	notes       []Note
	lastId      int64
	initialized bool
}

func NewStore(log *zap.SugaredLogger, persister Persister) *Store {
	return &Store{
		log:       log,
		persister: persister,
		now:       time.Now,
	}
}

// Initialize seeds the store from storage. Unusable stored data is logged and the
// store starts empty.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return ErrAlreadyInitialized
	}

	loaded, err := s.persister.Load(ctx)
	if err != nil {
		s.log.Errorw("initialize", "status", "starting with no notes", "ERROR", err)
		loaded = nil
	}

	s.notes = make([]Note, 0, len(loaded))
	for _, n := range loaded {
		s.notes = append(s.notes, Note(n))
	}
	if len(s.notes) > 0 {
		s.lastId = s.notes[len(s.notes)-1].Id
	}
	s.initialized = true

	s.log.Infow("initialize", "status", "notes loaded", "count", len(s.notes))
	return nil
}

// Create validates newN and appends it as a note. When the save fails the note is kept
// and returned together with the *note.WriteError.
func (s *Store) Create(ctx context.Context, newN NewNote) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return Note{}, ErrNotInitialized
	}

	description := strings.TrimSpace(newN.Description)
	if description == "" {
		return Note{}, &ValidationError{Field: "description", Reason: "required"}
	}
	title := strings.TrimSpace(newN.Title)
	if title == "" {
		title = Untitled
	}

	now := s.now().UTC()
	id := now.UnixMilli()
	if id <= s.lastId {
		id = s.lastId + 1
	}
	s.lastId = id

	created := Note{
		Id:          id,
		Title:       title,
		Description: description,
		IsImportant: newN.IsImportant,
		CreatedAt:   now.Format(note.TimeLayout),
	}
	s.notes = append(s.notes, created)

	return created, s.save(ctx, "create", id)
}

// Delete removes the note with the given id. Asking the user for confirmation is up to
// the caller.
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}

	i := s.indexOf(id)
	if i < 0 {
		return &NotFoundError{Id: id}
	}

	remaining := make([]Note, 0, len(s.notes)-1)
	remaining = append(remaining, s.notes[:i]...)
	s.notes = append(remaining, s.notes[i+1:]...)

	return s.save(ctx, "delete", id)
}

// List returns a copy of the notes in display order
func (s *Store) List() []Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append(make([]Note, 0, len(s.notes)), s.notes...)
}

func (s *Store) Get(id int64) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return Note{}, ErrNotInitialized
	}
	i := s.indexOf(id)
	if i < 0 {
		return Note{}, &NotFoundError{Id: id}
	}
	return s.notes[i], nil
}

// indexOf relies on ids increasing in insertion order
func (s *Store) indexOf(id int64) int {
	i := sort.Search(len(s.notes), func(i int) bool { return s.notes[i].Id >= id })
	if i < len(s.notes) && s.notes[i].Id == id {
		return i
	}
	return -1
}

func (s *Store) save(ctx context.Context, op string, id int64) error {
	persisted := make([]note.Note, len(s.notes))
	for i, n := range s.notes {
		persisted[i] = note.Note(n)
	}

	if err := s.persister.Save(ctx, persisted); err != nil {
		s.log.Errorw(op, "id", id, "status", "notes kept in memory only", "ERROR", err)
		return err
	}
	return nil
}
