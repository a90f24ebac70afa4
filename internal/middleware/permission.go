package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campuslms/rewards-api/internal/api/dto"
	"github.com/campuslms/rewards-api/internal/apperror"
	"github.com/campuslms/rewards-api/internal/repository"
	"github.com/campuslms/rewards-api/internal/repository/postgres"
	"github.com/campuslms/rewards-api/internal/utils"
	"github.com/campuslms/rewards-api/pkg/logger"
)

// PermissionMiddleware produces guards parameterized by a required
// permission name. Must be wired after JWTAuth and ResolveTenant.
type PermissionMiddleware struct {
	tenantData repository.TenantDataFactory
	logger     *logger.Logger
}

func NewPermissionMiddleware(logger *logger.Logger) *PermissionMiddleware {
	return &PermissionMiddleware{
		tenantData: postgres.NewTenantData,
		logger:     logger,
	}
}

// NewPermissionMiddlewareWithFactory injects a custom repository factory.
// Used in tests.
func NewPermissionMiddlewareWithFactory(factory repository.TenantDataFactory, logger *logger.Logger) *PermissionMiddleware {
	return &PermissionMiddleware{
		tenantData: factory,
		logger:     logger,
	}
}

// RequirePermission grants when the caller's role holds the named
// permission. Super admins pass unconditionally without touching the
// permission tables.
func (m *PermissionMiddleware) RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromGin(c)
		if !ok {
			dto.AbortError(c, apperror.Unauthenticated("authentication required"))
			return
		}

		v, exists := c.Get(string(utils.TenantDBKey))
		if !exists {
			// Wiring bug: this guard ran before tenant resolution.
			dto.AbortError(c, apperror.Internal("tenant database not initialized", nil))
			return
		}
		db, ok := v.(*gorm.DB)
		if !ok {
			dto.AbortError(c, apperror.Internal("tenant database not initialized", nil))
			return
		}

		if claims.SuperAdmin {
			m.logger.Infof("Super admin %s bypassed permission check for: %s", claims.UserID, permission)
			c.Next()
			return
		}

		granted, err := m.tenantData(db).Permissions().HasGrant(c.Request.Context(), claims.RoleID, permission)
		if err != nil {
			m.logger.Error("Permission check failed", err)
			dto.AbortError(c, apperror.Internal("error validating permissions", err))
			return
		}

		if !granted {
			m.logger.Warnf("User %s (role %s) denied access - missing permission: %s",
				claims.UserID, claims.RoleID, permission)
			dto.AbortError(c, apperror.Newf(apperror.KindForbidden,
				"Insufficient permissions. Required: %s", permission))
			return
		}

		m.logger.Infof("User %s granted access with permission: %s", claims.UserID, permission)
		c.Next()
	}
}
