package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/sticky-notes/platform/web/handler"
	"net/http"
)

// Get godoc
// @Summary Find a note
// @Description Find a note using its id
// @Tags Note
// @Produce json
// @Param id path string true "Note id"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [get]
func (h Handlers) Get(ctx *gin.Context) handler.Result {
	id, bad := parseId(ctx.Param("id"))
	if bad != nil {
		return *bad
	}

	found, err := h.Store.Get(id)
	if err != nil {
		return errorResult(err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   found,
	}
}
