package migrations

import (
	"github.com/aureliajewels/jewelry-cms/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Subcategory{},
		&models.Banner{},
		&models.HeroSection{},
		&models.Service{},
		&models.Testimonial{},
		&models.Video{},
		&models.Review{},
		&models.EmailSubscription{},
		&models.Admin{},
		&models.Role{},
		&models.AdminRole{},
		&models.Distributor{},
		&models.Product{},
	)
}
