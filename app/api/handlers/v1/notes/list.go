package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/sticky-notes/business/v1/note"
	"github.com/ribgsilva/sticky-notes/platform/web/handler"
	"net/http"
)

// List godoc
// @Summary List notes
// @Description List every note in creation order with the rotation it is displayed with
// @Tags Note
// @Produce json
// @Success 200 {object} notes.ListResponse
// @Router /v1/notes [get]
func (h Handlers) List(_ *gin.Context) handler.Result {
	resp := ListResponse{Notes: note.Layout(h.Store.List())}
	if len(resp.Notes) == 0 {
		resp.Hint = note.EmptyHint
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   resp,
	}
}
