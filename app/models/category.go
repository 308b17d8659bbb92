package models

import (
	"time"
)

// Category groups storefront products and owns its subcategories: deleting a
// category removes them as well.
type Category struct {
	ID              string        `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Title           string        `gorm:"size:100;not null" json:"title"`
	Link            string        `gorm:"size:255;not null" json:"link"`
	Icon            *string       `gorm:"size:255" json:"icon,omitempty"`
	Image           *string       `gorm:"size:255" json:"image,omitempty"`
	BreadcrumbImage *string       `gorm:"size:255" json:"breadcrumbImage,omitempty"`
	IsActive        bool          `gorm:"not null;default:true" json:"isActive"`
	SortOrder       int           `gorm:"not null;default:0;index" json:"sortOrder"`
	Subcategories   []Subcategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"subcategories"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

type Subcategory struct {
	ID         string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	CategoryID string    `gorm:"size:36;not null;index" json:"categoryId"`
	IsActive   bool      `gorm:"not null;default:true" json:"isActive"`
	SortOrder  int       `gorm:"not null;default:0;index" json:"sortOrder"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
