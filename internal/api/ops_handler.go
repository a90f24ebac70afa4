package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuslms/rewards-api/internal/api/dto"
	"github.com/campuslms/rewards-api/internal/apperror"
	"github.com/campuslms/rewards-api/internal/tenantpool"
	"github.com/campuslms/rewards-api/internal/utils"
)

// PoolStats is the read-only view of the tenant pool the ops surface needs.
type PoolStats interface {
	Stats() []tenantpool.TenantStats
}

type OpsHandler struct {
	*BaseHandler
	pool PoolStats
}

func NewOpsHandler(pool PoolStats) *OpsHandler {
	return &OpsHandler{pool: pool}
}

// TenantPoolStats godoc
// @Summary Tenant connection pool occupancy
// @Description Per-tenant pooled connection counts with redacted connection strings. Super admin only.
// @Tags ops
// @Produce json
// @Success 200 {object} dto.Envelope{data=[]tenantpool.TenantStats}
// @Failure 403 {object} dto.Envelope
// @Security BearerAuth
// @Router /ops/pool-stats [get]
func (h *OpsHandler) TenantPoolStats(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(h.RequestCtx(c))
	if err != nil {
		dto.RespondError(c, apperror.Unauthenticated("authentication required"))
		return
	}

	if !claims.SuperAdmin {
		dto.RespondError(c, apperror.Forbidden("super admin access required"))
		return
	}

	dto.Respond(c, http.StatusOK, "pool stats fetched", h.pool.Stats())
}
