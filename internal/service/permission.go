package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/campuslms/rewards-api/internal/api/dto"
	"github.com/campuslms/rewards-api/internal/apperror"
	"github.com/campuslms/rewards-api/internal/domain"
	"github.com/campuslms/rewards-api/internal/repository"
	"github.com/campuslms/rewards-api/internal/token"
	"github.com/campuslms/rewards-api/pkg/logger"
)

// PermissionService answers "does this identity hold this permission" for
// the explicit check endpoint. The route guards use the middleware variant;
// this exists so clients can probe capabilities up front.
type PermissionService struct {
	tenantData repository.TenantDataFactory
	logger     *logger.Logger
}

func NewPermissionService(tenantData repository.TenantDataFactory, logger *logger.Logger) *PermissionService {
	return &PermissionService{
		tenantData: tenantData,
		logger:     logger,
	}
}

func (s *PermissionService) HasPermission(ctx context.Context, db *gorm.DB, claims *token.Claims, permission string) (*dto.PermissionCheckResponse, error) {
	if permission == "" {
		return nil, apperror.BadRequest("permission name is required")
	}
	if !domain.IsApplicationPermission(permission) {
		return nil, apperror.Newf(apperror.KindBadRequest,
			"unknown permission namespace: %s", permission)
	}

	if claims.SuperAdmin {
		s.logger.Infof("Super admin %s has permission: %s", claims.UserID, permission)
		return &dto.PermissionCheckResponse{
			HasPermission: true,
			IsSuperAdmin:  true,
		}, nil
	}

	granted, err := s.tenantData(db).Permissions().HasGrant(ctx, claims.RoleID, permission)
	if err != nil {
		return nil, apperror.Internal("error validating permissions", err)
	}

	s.logger.Infof("User %s (role %s) permission check for %s: %t",
		claims.UserID, claims.RoleID, permission, granted)

	if !granted {
		return nil, apperror.Newf(apperror.KindForbidden,
			"Insufficient permissions. Required: %s", permission)
	}

	return &dto.PermissionCheckResponse{HasPermission: true}, nil
}
