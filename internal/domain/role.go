package domain

import "strings"

// PermissionPrefix scopes which permission names the application owns.
// Grants outside this namespace are never returned to clients.
const PermissionPrefix = "LMS"

type Role struct {
	ID   string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name string `gorm:"type:text;not null;unique" json:"name"`
}

func (Role) TableName() string {
	return "roles"
}

type Permission struct {
	ID   string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name string `gorm:"column:permission;type:text;not null;unique" json:"permission"`
}

func (Permission) TableName() string {
	return "permissions"
}

// RolePermission binds a role to a named capability within one tenant.
type RolePermission struct {
	RoleID       string `gorm:"column:role_id;type:uuid;primaryKey" json:"role_id"`
	PermissionID string `gorm:"column:permission_id;type:uuid;primaryKey" json:"permission_id"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}

// IsApplicationPermission reports whether a permission name belongs to this
// application's namespace.
func IsApplicationPermission(name string) bool {
	return strings.HasPrefix(name, PermissionPrefix)
}
