package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/campuslms/rewards-api/internal/domain"
)

// TenantDirectory reads the tenant registry over the long-lived admin
// database connection. Read-only: provisioning happens out of band.
type TenantDirectory struct {
	adminDB *gorm.DB
}

func NewTenantDirectory(adminDB *gorm.DB) *TenantDirectory {
	return &TenantDirectory{adminDB: adminDB}
}

func (d *TenantDirectory) GetByCode(ctx context.Context, code string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := d.adminDB.WithContext(ctx).First(&tenant, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (d *TenantDirectory) GetActiveByID(ctx context.Context, id string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := d.adminDB.WithContext(ctx).First(&tenant, "id = ? AND active = ?", id, true).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}
