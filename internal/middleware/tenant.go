package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campuslms/rewards-api/internal/api/dto"
	"github.com/campuslms/rewards-api/internal/apperror"
	"github.com/campuslms/rewards-api/internal/repository"
	"github.com/campuslms/rewards-api/internal/utils"
	"github.com/campuslms/rewards-api/pkg/logger"
)

// ConnectionPool is the slice of the tenant pool this middleware needs.
type ConnectionPool interface {
	Acquire(ctx context.Context, dsn, tenantID string) (*gorm.DB, error)
}

// TenantMiddleware bridges a verified identity to a usable tenant database:
// it resolves the tenant claim against the registry and injects a pooled
// connection for downstream handlers.
type TenantMiddleware struct {
	directory repository.TenantDirectory
	pool      ConnectionPool
	logger    *logger.Logger
}

func NewTenantMiddleware(directory repository.TenantDirectory, pool ConnectionPool, logger *logger.Logger) *TenantMiddleware {
	return &TenantMiddleware{
		directory: directory,
		pool:      pool,
		logger:    logger,
	}
}

func (m *TenantMiddleware) ResolveTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromGin(c)
		if !ok {
			dto.AbortError(c, apperror.Unauthenticated("authentication required"))
			return
		}

		if claims.TenantID == "" {
			dto.AbortError(c, apperror.Unauthenticated("tenant identifier not found in token"))
			return
		}

		ctx := c.Request.Context()

		tenant, err := m.directory.GetActiveByID(ctx, claims.TenantID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				dto.AbortError(c, apperror.Forbidden("tenant not found or inactive"))
				return
			}
			m.logger.Error("Tenant lookup failed", err)
			dto.AbortError(c, apperror.Internal("failed to resolve tenant", err))
			return
		}

		db, err := m.pool.Acquire(ctx, tenant.DSN, tenant.ID)
		if err != nil {
			m.logger.Error("Tenant connection acquisition failed", err)
			dto.AbortError(c, apperror.Internal("tenant database unavailable", err))
			return
		}

		c.Set(string(utils.TenantKey), tenant)
		c.Set(string(utils.TenantDBKey), db)
		c.Next()
	}
}
