package models

import "time"

type Admin struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Username  string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	Roles     []Role    `gorm:"many2many:admin_roles;" json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Role struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name      string    `gorm:"size:50;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AdminRole struct {
	AdminID   string `gorm:"size:36;primaryKey"`
	RoleID    string `gorm:"size:36;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	RoleSuperAdmin = "superadmin"
	RoleEditor     = "editor"
)
