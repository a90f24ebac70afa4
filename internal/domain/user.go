package domain

import (
	"time"
)

// User lives in a tenant database, never in the control plane.
type User struct {
	ID         string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Email      string    `gorm:"type:text;not null;unique" json:"email"`
	Password   string    `gorm:"type:text;not null" json:"-"`
	Name       string    `gorm:"type:text;not null" json:"name"`
	RoleID     string    `gorm:"type:uuid;not null" json:"role_id"`
	SuperAdmin bool      `gorm:"not null;default:false" json:"super_admin"`
	Active     bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Role       *Role     `gorm:"foreignKey:RoleID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
