package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/sticky-notes/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/sticky-notes/app/api/handlers/v1/notes"
	"github.com/ribgsilva/sticky-notes/business/v1/note"
	"github.com/ribgsilva/sticky-notes/platform/web/handler"
	"go.uber.org/zap"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine, log *zap.SugaredLogger, store *note.Store) {
	h := notes.Handlers{Log: log, Store: store}

	r.GET("/v1/notes", handler.Wrapper(h.List))
	r.POST("/v1/notes", handler.Wrapper(h.Create))
	r.GET("/v1/notes/:id", handler.Wrapper(h.Get))
	r.DELETE("/v1/notes/:id", handler.Wrapper(h.Delete))
}
