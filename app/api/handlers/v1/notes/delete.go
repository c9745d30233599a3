package notes

import (
	"errors"
	"github.com/gin-gonic/gin"
	pnote "github.com/ribgsilva/sticky-notes/persistence/v1/note"
	"github.com/ribgsilva/sticky-notes/platform/web/handler"
	"net/http"
)

// Delete godoc
// @Summary Delete a note
// @Description Delete a note for good. The client is expected to have asked the user for confirmation.
// @Tags Note
// @Param id path string true "Note id"
// @Success 204
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [delete]
func (h Handlers) Delete(ctx *gin.Context) handler.Result {
	id, bad := parseId(ctx.Param("id"))
	if bad != nil {
		return *bad
	}

	err := h.Store.Delete(ctx, id)
	var we *pnote.WriteError
	switch {
	case errors.As(err, &we):
		h.Log.Errorw("delete", "id", id, "ERROR", err)
		return handler.Result{
			Status:  http.StatusNoContent,
			Headers: map[string]string{"Warning": persistenceWarning},
		}
	case err != nil:
		return errorResult(err)
	default:
		return handler.Result{Status: http.StatusNoContent}
	}
}
