package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Code         string          `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Name         string          `gorm:"size:255;not null" json:"name"`
	Slug         string          `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description  string          `gorm:"type:text" json:"description"`
	CategoryID   string          `gorm:"size:36;index" json:"categoryId"`
	Price        decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	Stock        int             `gorm:"not null" json:"stock"`
	GoldKarat    int             `json:"goldKarat"`
	GoldWeight   decimal.Decimal `gorm:"type:decimal(10,3);default:0.000" json:"goldWeight"`
	DiamondCarat decimal.Decimal `gorm:"type:decimal(10,3);default:0.000" json:"diamondCarat"`
	Image        *string         `gorm:"size:255" json:"image,omitempty"`
	HoverImage   *string         `gorm:"size:255" json:"hoverImage,omitempty"`
	IsActive     bool            `gorm:"not null;default:true" json:"isActive"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
