package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/campuslms/rewards-api/internal/utils"
)

type BaseHandler struct{}

// RequestCtx lifts the values middleware stored on the gin context into the
// request context under typed keys, so services and the utils accessors work
// against a plain context.Context.
func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}
