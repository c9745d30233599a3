package notes

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/sticky-notes/business/v1/note"
	pnote "github.com/ribgsilva/sticky-notes/persistence/v1/note"
	"github.com/ribgsilva/sticky-notes/platform/web/handler"
	"net/http"
)

// Create godoc
// @Summary Create a note
// @Description Create a note, the description is required and an empty title becomes "Sin título"
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "New note"
// @Success 201 {object} note.Note
// @Failure 400 {object} handler.Error
// @Router /v1/notes [post]
func (h Handlers) Create(ctx *gin.Context) handler.Result {
	var newN note.NewNote
	if err := ctx.ShouldBindJSON(&newN); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid body: " + err.Error()},
		}
	}

	created, err := h.Store.Create(ctx, newN)
	var we *pnote.WriteError
	switch {
	case errors.As(err, &we):
		h.Log.Errorw("create", "id", created.Id, "ERROR", err)
		return handler.Result{
			Status:  http.StatusCreated,
			Body:    created,
			Headers: map[string]string{"Warning": persistenceWarning},
		}
	case err != nil:
		return errorResult(err)
	default:
		return handler.Result{
			Status: http.StatusCreated,
			Body:   created,
		}
	}
}
