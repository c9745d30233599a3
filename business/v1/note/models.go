package note

import (
	"errors"
	"fmt"
	"github.com/ribgsilva/sticky-notes/persistence/v1/note"
)

// Untitled is the title given to notes created without one
const Untitled = note.Untitled

// EmptyHint is shown by the presentation layer while there are no notes
const EmptyHint = "¡Agrega tu primera nota Post-it!"

type Note struct {
	Id          int64  `json:"id" example:"1700000000000"`
	Title       string `json:"title" example:"Compras"`
	Description string `json:"description" example:"Buy milk"`
	IsImportant bool   `json:"isImportant" example:"false"`
	CreatedAt   string `json:"createdAt" example:"2023-11-14T22:13:20.000Z"`
}

type NewNote struct {
	Title       string `json:"title" example:"Compras"`
	Description string `json:"description" example:"Buy milk"`
	IsImportant bool   `json:"isImportant" example:"false"`
}

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// DeleteNote is the payload of a delete event
type DeleteNote struct {
	Id int64 `json:"id"`
}

var (
	ErrNotInitialized     = errors.New("note store is not initialized")
	ErrAlreadyInitialized = errors.New("note store is already initialized")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

type NotFoundError struct {
	Id int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("note %d not found", e.Id)
}
