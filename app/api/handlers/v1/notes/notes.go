package notes

import (
	"errors"
	"github.com/ribgsilva/sticky-notes/business/v1/note"
	"github.com/ribgsilva/sticky-notes/platform/web/handler"
	"go.uber.org/zap"
	"net/http"
	"strconv"
)

// Handlers exposes a note store over http
type Handlers struct {
	Log   *zap.SugaredLogger
	Store *note.Store
}

// ListResponse is the notes in display order with their layout
type ListResponse struct {
	Notes []note.Placement `json:"notes"`
	Hint  string           `json:"hint,omitempty" example:"¡Agrega tu primera nota Post-it!"`
}

const persistenceWarning = `199 - "note kept in memory only, storage write failed"`

func parseId(raw string) (int64, *handler.Result) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid id"},
		}
	}
	return id, nil
}

func errorResult(err error) handler.Result {
	var ve *note.ValidationError
	var nf *note.NotFoundError
	switch {
	case errors.As(err, &ve):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: err.Error(), Field: ve.Field},
		}
	case errors.As(err, &nf):
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Message: err.Error()},
		}
	case errors.Is(err, note.ErrNotInitialized):
		return handler.Result{
			Status: http.StatusServiceUnavailable,
			Body:   handler.Error{Message: err.Error()},
		}
	default:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}
}
