package models

import (
	"time"
)

// Role values stored on admin_users.role.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type AdminUser struct {
	ID           int        `gorm:"primaryKey;column:id" json:"id"`
	Username     string     `gorm:"column:username;uniqueIndex;size:64" json:"username"`
	PasswordHash string     `gorm:"column:password_hash" json:"-"`
	Email        string     `gorm:"column:email" json:"email"`
	Role         string     `gorm:"column:role;default:admin" json:"role"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	LastLogin    *time.Time `gorm:"column:last_login" json:"last_login,omitempty"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

func (u *AdminUser) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// ValidRole reports whether role is one of the stored role strings.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}
