package seeders

import (
	"fmt"

	"github.com/aureliajewels/jewelry-cms/app/db/fakers"
	"github.com/aureliajewels/jewelry-cms/app/helpers"
	"github.com/aureliajewels/jewelry-cms/app/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const productsPerCategory = 6

var categorySeeds = map[string][]string{
	"Rings":     {"Engagement", "Wedding Bands", "Cocktail"},
	"Necklaces": {"Pendants", "Chains", "Chokers"},
	"Earrings":  {"Studs", "Hoops", "Drops"},
	"Bracelets": {"Bangles", "Tennis", "Charm"},
}

// Seed fills an empty database with a superadmin, the category tree, demo
// content and a faked catalog. Safe to rerun: it bails out when categories
// already exist.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing data: %w", err)
	}
	if count > 0 {
		logrus.Info("Database already seeded, skipping")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedAdmin(tx); err != nil {
			return err
		}
		categoryIDs, err := seedCategories(tx)
		if err != nil {
			return err
		}
		if err := seedContent(tx); err != nil {
			return err
		}
		return seedCatalog(tx, categoryIDs)
	})
}

func seedAdmin(tx *gorm.DB) error {
	hashed := helpers.HashPassword("ChangeMe123!")
	if hashed == "" {
		return fmt.Errorf("failed to hash seed admin password")
	}

	role := models.Role{ID: uuid.New().String(), Name: models.RoleSuperAdmin}
	if err := tx.Create(&role).Error; err != nil {
		return fmt.Errorf("failed to seed role: %w", err)
	}

	admin := models.Admin{
		ID:       uuid.New().String(),
		Name:     "Administrator",
		Email:    "admin@aureliajewels.com",
		Username: "admin",
		Password: hashed,
		IsActive: true,
		Roles:    []models.Role{role},
	}
	if err := tx.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	logrus.Info("Seeded superadmin admin@aureliajewels.com")
	return nil
}

func seedCategories(tx *gorm.DB) ([]string, error) {
	ids := make([]string, 0, len(categorySeeds))
	order := 0
	for title, subNames := range categorySeeds {
		category := models.Category{
			ID:        uuid.New().String(),
			Title:     title,
			Link:      "/" + helpers.GenerateSlug(title),
			IsActive:  true,
			SortOrder: order,
		}
		for i, name := range subNames {
			category.Subcategories = append(category.Subcategories, models.Subcategory{
				ID:         uuid.New().String(),
				Name:       name,
				CategoryID: category.ID,
				IsActive:   true,
				SortOrder:  i,
			})
		}
		if err := tx.Create(&category).Error; err != nil {
			return nil, fmt.Errorf("failed to seed category %s: %w", title, err)
		}
		ids = append(ids, category.ID)
		order++
	}
	return ids, nil
}

func seedContent(tx *gorm.DB) error {
	hero := models.HeroSection{
		ID:         uuid.New().String(),
		Heading:    "Timeless pieces, modern craft",
		Subheading: "Handcrafted fine jewelry in 18k and 22k gold",
		ButtonText: "Shop the collection",
		ButtonLink: "/collections",
		IsActive:   true,
	}
	if err := tx.Create(&hero).Error; err != nil {
		return fmt.Errorf("failed to seed hero section: %w", err)
	}

	banners := []models.Banner{
		{ID: uuid.New().String(), Title: "Bridal Edit", Subtitle: "Rings for the big day", Link: "/rings", IsActive: true, SortOrder: 0},
		{ID: uuid.New().String(), Title: "Everyday Gold", Subtitle: "Pieces you never take off", Link: "/necklaces", IsActive: true, SortOrder: 1},
	}
	if err := tx.Create(&banners).Error; err != nil {
		return fmt.Errorf("failed to seed banners: %w", err)
	}

	services := []models.Service{
		{ID: uuid.New().String(), Title: "Free resizing", Description: "Complimentary ring resizing within 60 days.", IsActive: true, SortOrder: 0},
		{ID: uuid.New().String(), Title: "Lifetime polish", Description: "Bring any piece back for a free professional polish.", IsActive: true, SortOrder: 1},
		{ID: uuid.New().String(), Title: "Certified stones", Description: "Every diamond ships with its grading certificate.", IsActive: true, SortOrder: 2},
	}
	if err := tx.Create(&services).Error; err != nil {
		return fmt.Errorf("failed to seed services: %w", err)
	}

	testimonials := []models.Testimonial{
		{ID: uuid.New().String(), Name: "Priya S.", Location: "Mumbai", Quote: "The engagement ring exceeded every expectation.", IsActive: true, SortOrder: 0},
		{ID: uuid.New().String(), Name: "Elena M.", Location: "Lisbon", Quote: "Beautiful craftsmanship and a lovely unboxing.", IsActive: true, SortOrder: 1},
	}
	if err := tx.Create(&testimonials).Error; err != nil {
		return fmt.Errorf("failed to seed testimonials: %w", err)
	}
	return nil
}

func seedCatalog(tx *gorm.DB, categoryIDs []string) error {
	for _, categoryID := range categoryIDs {
		for i := 0; i < productsPerCategory; i++ {
			product := fakers.ProductFaker(categoryID)
			if err := tx.Create(product).Error; err != nil {
				return fmt.Errorf("failed to seed product: %w", err)
			}
			for j := 0; j < 2; j++ {
				if err := tx.Create(fakers.ReviewFaker(product.ID)).Error; err != nil {
					return fmt.Errorf("failed to seed review: %w", err)
				}
			}
		}
	}

	for i := 0; i < 15; i++ {
		if err := tx.Create(fakers.SubscriptionFaker()).Error; err != nil {
			return fmt.Errorf("failed to seed subscription: %w", err)
		}
	}
	logrus.Info("Seeded demo catalog")
	return nil
}
