package handler

import (
	"github.com/gin-gonic/gin"
)

// Result is what every handler returns, the Wrapper writes it as the response
type Result struct {
	Status  int
	Body    any
	Headers map[string]string
}

// Error is the body used for every error response
type Error struct {
	Message string `json:"message" example:"note not found"`
	Field   string `json:"field,omitempty" example:"description"`
}

// Wrapper adapts a handler returning a Result to a gin.HandlerFunc
func Wrapper(h func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := h(ctx)
		for k, v := range r.Headers {
			ctx.Header(k, v)
		}
		if r.Body == nil {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}
