package models

import "time"

// Review references a product by id only. The original storefront renders
// reviews for products that may have been removed, so no FK is enforced.
type Review struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID string    `gorm:"size:36;index" json:"productId"`
	Author    string    `gorm:"size:100;not null" json:"author"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
