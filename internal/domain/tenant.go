package domain

import (
	"time"
)

// Tenant is a row in the control-plane tenant registry. Immutable after
// provisioning except for the Active flag.
type Tenant struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Code      string    `gorm:"type:text;not null;unique" json:"code"`
	DSN       string    `gorm:"column:db_dsn;type:text;not null" json:"-"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}
