package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campuslms/rewards-api/internal/api/dto"
	"github.com/campuslms/rewards-api/internal/apperror"
	"github.com/campuslms/rewards-api/internal/token"
	"github.com/campuslms/rewards-api/internal/utils"
)

//go:generate mockery --name PermissionService --output ../mocks
type PermissionService interface {
	HasPermission(ctx context.Context, db *gorm.DB, claims *token.Claims, permission string) (*dto.PermissionCheckResponse, error)
}

type PermissionHandler struct {
	*BaseHandler
	service PermissionService
}

func NewPermissionHandler(service PermissionService) *PermissionHandler {
	return &PermissionHandler{service: service}
}

// HasPermission godoc
// @Summary Check a permission
// @Description Reports whether the authenticated identity holds the named permission in its tenant
// @Tags permission
// @Produce json
// @Param permission path string true "Permission name"
// @Success 200 {object} dto.Envelope{data=dto.PermissionCheckResponse}
// @Failure 401 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope
// @Security BearerAuth
// @Router /permission/has-permission/{permission} [get]
func (h *PermissionHandler) HasPermission(c *gin.Context) {
	ctx := h.RequestCtx(c)

	claims, err := utils.GetClaimsFromContext(ctx)
	if err != nil {
		dto.RespondError(c, apperror.Unauthenticated("authentication required"))
		return
	}

	db, err := utils.GetTenantDBFromContext(ctx)
	if err != nil {
		dto.RespondError(c, apperror.Internal("tenant database not initialized", err))
		return
	}

	resp, err := h.service.HasPermission(ctx, db, claims, c.Param("permission"))
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "permission check successful", resp)
}
