package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/campuslms/rewards-api/internal/api/dto"
	"github.com/campuslms/rewards-api/internal/apperror"
	"github.com/campuslms/rewards-api/internal/repository"
	"github.com/campuslms/rewards-api/internal/token"
	"github.com/campuslms/rewards-api/pkg/crypto"
	"github.com/campuslms/rewards-api/pkg/logger"
)

// ConnectionPool is the slice of the tenant pool the login path needs.
type ConnectionPool interface {
	Acquire(ctx context.Context, dsn, tenantID string) (*gorm.DB, error)
}

// AuthService authenticates a user against their tenant's database. The
// tenant is picked by the email's domain label, so login works before any
// token exists.
type AuthService struct {
	directory  repository.TenantDirectory
	pool       ConnectionPool
	tenantData repository.TenantDataFactory
	tokens     *token.Manager
	logger     *logger.Logger
}

func NewAuthService(
	directory repository.TenantDirectory,
	pool ConnectionPool,
	tenantData repository.TenantDataFactory,
	tokens *token.Manager,
	logger *logger.Logger,
) *AuthService {
	return &AuthService{
		directory:  directory,
		pool:       pool,
		tenantData: tenantData,
		tokens:     tokens,
		logger:     logger,
	}
}

// TenantCodeFromEmail extracts the tenant short code from an email address:
// the text before the first '.' in the domain part. admin@acme.edu -> acme.
func TenantCodeFromEmail(email string) (string, error) {
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[1] == "" {
		return "", apperror.BadRequest("invalid email format")
	}

	code := strings.Split(parts[1], ".")[0]
	if code == "" {
		return "", apperror.BadRequest("invalid email format")
	}
	return code, nil
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	code, err := TenantCodeFromEmail(req.Email)
	if err != nil {
		return nil, err
	}

	tenant, err := s.directory.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("tenant not found for this email domain")
		}
		return nil, apperror.Internal("failed to resolve tenant", err)
	}

	if !tenant.Active {
		return nil, apperror.Forbidden("tenant account is inactive")
	}

	db, err := s.pool.Acquire(ctx, tenant.DSN, tenant.ID)
	if err != nil {
		return nil, apperror.Internal("tenant database unavailable", err)
	}
	data := s.tenantData(db)

	user, err := data.Users().GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unauthenticated("invalid credentials")
		}
		return nil, apperror.Internal("failed to look up user", err)
	}

	if !crypto.CheckPassword(req.Password, user.Password) {
		return nil, apperror.Unauthenticated("invalid credentials")
	}

	var permissions []string
	if user.SuperAdmin {
		permissions, err = data.Permissions().ListAll(ctx)
	} else {
		permissions, err = data.Permissions().ListByRole(ctx, user.RoleID)
	}
	if err != nil {
		return nil, apperror.Internal("failed to load permissions", err)
	}

	signed, err := s.tokens.Issue(&token.Claims{
		UserID:     user.ID,
		RoleID:     user.RoleID,
		TenantID:   tenant.ID,
		SuperAdmin: user.SuperAdmin,
	})
	if err != nil {
		return nil, err
	}

	roleName := ""
	if user.Role != nil {
		roleName = user.Role.Name
	}

	s.logger.Infof("User %s logged in for tenant %s", user.ID, tenant.Code)

	return &dto.LoginResponse{
		Token:       signed,
		Permissions: permissions,
		Role:        roleName,
		Tenant: dto.TenantInfo{
			ID:   tenant.ID,
			Name: tenant.Name,
			Code: tenant.Code,
		},
	}, nil
}
