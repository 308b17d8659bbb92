package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/aureliajewels/jewelry-cms/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryRepositoryImpl covers categories and their owned subcategories.
// Deleting a category always removes its subcategories in the same
// transaction.
type CategoryRepositoryImpl interface {
	Create(ctx context.Context, category *models.Category) error
	CreateWithSubcategories(ctx context.Context, category *models.Category, subcategoryNames []string) error
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	GetAllWithSubcategories(ctx context.Context) ([]models.Category, error)
	GetSubcategoriesByCategoryID(ctx context.Context, categoryID string) ([]models.Subcategory, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (*models.Category, error)

	CreateSubcategory(ctx context.Context, subcategory *models.Subcategory) error
	GetSubcategoryByID(ctx context.Context, id string) (*models.Subcategory, error)
	UpdateSubcategory(ctx context.Context, subcategory *models.Subcategory) error
	DeleteSubcategory(ctx context.Context, id string) error
	ToggleSubcategoryActive(ctx context.Context, id string) (*models.Subcategory, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) CreateWithSubcategories(ctx context.Context, category *models.Category, subcategoryNames []string) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(category).Error; err != nil {
			return fmt.Errorf("failed to create category: %w", err)
		}

		for i, name := range subcategoryNames {
			sub := models.Subcategory{
				ID:         uuid.New().String(),
				Name:       name,
				CategoryID: category.ID,
				IsActive:   true,
				SortOrder:  i,
				CreatedAt:  time.Now(),
				UpdatedAt:  time.Now(),
			}
			if err := tx.Create(&sub).Error; err != nil {
				return fmt.Errorf("failed to create subcategory %q: %w", name, err)
			}
			category.Subcategories = append(category.Subcategories, sub)
		}
		return nil
	})
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Preload("Subcategories", subcategoryOrder).
		First(&category, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, created_at ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetAllWithSubcategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Preload("Subcategories", subcategoryOrder).
		Order("sort_order ASC, created_at ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get categories with subcategories: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) GetSubcategoriesByCategoryID(ctx context.Context, categoryID string) ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("sort_order ASC, created_at ASC").
		Find(&subcategories).Error
	if err != nil {
		return nil, err
	}
	return subcategories, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Subcategory{}, "category_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete subcategories of category %s: %w", id, err)
		}
		return tx.Delete(&models.Category{}, "id = ?", id).Error
	})
}

func (r *categoryRepository) ToggleActive(ctx context.Context, id string) (*models.Category, error) {
	category, err := r.GetByID(ctx, id)
	if err != nil || category == nil {
		return category, err
	}
	category.IsActive = !category.IsActive
	category.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Model(category).Select("is_active", "updated_at").Updates(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (r *categoryRepository) CreateSubcategory(ctx context.Context, subcategory *models.Subcategory) error {
	if subcategory.ID == "" {
		subcategory.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(subcategory).Error
}

func (r *categoryRepository) GetSubcategoryByID(ctx context.Context, id string) (*models.Subcategory, error) {
	var subcategory models.Subcategory
	err := r.db.WithContext(ctx).First(&subcategory, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &subcategory, nil
}

func (r *categoryRepository) UpdateSubcategory(ctx context.Context, subcategory *models.Subcategory) error {
	return r.db.WithContext(ctx).Save(subcategory).Error
}

func (r *categoryRepository) DeleteSubcategory(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Subcategory{}, "id = ?", id).Error
}

func (r *categoryRepository) ToggleSubcategoryActive(ctx context.Context, id string) (*models.Subcategory, error) {
	subcategory, err := r.GetSubcategoryByID(ctx, id)
	if err != nil || subcategory == nil {
		return subcategory, err
	}
	subcategory.IsActive = !subcategory.IsActive
	subcategory.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Model(subcategory).Select("is_active", "updated_at").Updates(subcategory).Error; err != nil {
		return nil, err
	}
	return subcategory, nil
}

func subcategoryOrder(db *gorm.DB) *gorm.DB {
	return db.Order("subcategories.sort_order ASC, subcategories.created_at ASC")
}
