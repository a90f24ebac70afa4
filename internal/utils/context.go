package utils

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/campuslms/rewards-api/internal/domain"
	"github.com/campuslms/rewards-api/internal/token"
)

type ContextKey string

const (
	ClaimsKey   ContextKey = "claims"
	TenantKey   ContextKey = "tenant"
	TenantDBKey ContextKey = "tenant_db"
)

var (
	ErrNoClaimsInContext   = errors.New("no claims found in context")
	ErrInvalidClaimsType   = errors.New("invalid claims type")
	ErrNoTenantInContext   = errors.New("no tenant found in context")
	ErrInvalidTenantType   = errors.New("invalid tenant type")
	ErrNoTenantDBInContext = errors.New("no tenant database found in context")
	ErrInvalidTenantDBType = errors.New("invalid tenant database type")
)

// GetClaimsFromContext returns the verified identity claims attached by the
// auth middleware.
func GetClaimsFromContext(ctx context.Context) (*token.Claims, error) {
	v := ctx.Value(ClaimsKey)
	if v == nil {
		return nil, ErrNoClaimsInContext
	}
	claims, ok := v.(*token.Claims)
	if !ok {
		return nil, ErrInvalidClaimsType
	}
	return claims, nil
}

// GetTenantFromContext returns the tenant record attached by the tenant
// resolution middleware.
func GetTenantFromContext(ctx context.Context) (*domain.Tenant, error) {
	v := ctx.Value(TenantKey)
	if v == nil {
		return nil, ErrNoTenantInContext
	}
	tenant, ok := v.(*domain.Tenant)
	if !ok {
		return nil, ErrInvalidTenantType
	}
	return tenant, nil
}

// GetTenantDBFromContext returns the pooled tenant database handle attached
// by the tenant resolution middleware. Borrowed only; callers never close it.
func GetTenantDBFromContext(ctx context.Context) (*gorm.DB, error) {
	v := ctx.Value(TenantDBKey)
	if v == nil {
		return nil, ErrNoTenantDBInContext
	}
	db, ok := v.(*gorm.DB)
	if !ok {
		return nil, ErrInvalidTenantDBType
	}
	return db, nil
}
