package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campuslms/rewards-api/internal/domain"
)

// TenantDirectory resolves tenants against the control-plane registry.
//
//go:generate mockery --name TenantDirectory --output ../mocks
type TenantDirectory interface {
	// GetByCode looks a tenant up by its unique short code, regardless of
	// the active flag so callers can distinguish unknown from inactive.
	GetByCode(ctx context.Context, code string) (*domain.Tenant, error)
	// GetActiveByID looks a tenant up by identifier, filtered to active rows.
	GetActiveByID(ctx context.Context, id string) (*domain.Tenant, error)
}

//go:generate mockery --name UserRepository --output ../mocks
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

//go:generate mockery --name PermissionRepository --output ../mocks
type PermissionRepository interface {
	// HasGrant reports whether the role holds the named permission.
	HasGrant(ctx context.Context, roleID, permission string) (bool, error)
	// ListByRole returns the application permission names granted to a role.
	ListByRole(ctx context.Context, roleID string) ([]string, error)
	// ListAll returns every application permission name. Super admins get
	// this instead of a role lookup.
	ListAll(ctx context.Context) ([]string, error)
}

//go:generate mockery --name RewardRepository --output ../mocks
type RewardRepository interface {
	Create(ctx context.Context, reward *domain.Reward) (*domain.Reward, error)
	GetByID(ctx context.Context, id string) (*domain.Reward, error)
	List(ctx context.Context, filter domain.RewardFilter) ([]domain.Reward, int64, error)
	Update(ctx context.Context, reward *domain.Reward) error
	SoftDelete(ctx context.Context, id string) error
	HistoryByUser(ctx context.Context, userID string, filter domain.RewardFilter) ([]domain.UserReward, int64, error)
}

// TenantData groups the repositories bound to one tenant's pooled database
// handle. Built per request around the handle the resolution middleware
// injected.
//
//go:generate mockery --name TenantData --output ../mocks
type TenantData interface {
	Users() UserRepository
	Permissions() PermissionRepository
	Rewards() RewardRepository
}

// TenantDataFactory builds the per-tenant repositories around a pooled
// handle. Injected so tests can substitute mocks for the gorm-backed set.
type TenantDataFactory func(db *gorm.DB) TenantData
