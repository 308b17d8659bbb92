package models

import "time"

type Distributor struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Company   string    `gorm:"size:150" json:"company"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
