package repositories

import (
	"context"
	"time"

	"github.com/aureliajewels/jewelry-cms/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepositoryImpl interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByCode(ctx context.Context, code string) (*models.Product, error)
	GetPage(ctx context.Context, page, limit int, search, categoryID string, activeOnly bool) ([]models.Product, int64, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (*models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).First(&product, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByCode(ctx context.Context, code string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).First(&product, "code = ?", code).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetPage(ctx context.Context, page, limit int, search, categoryID string, activeOnly bool) ([]models.Product, int64, error) {
	query := r.db.WithContext(ctx)
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR code LIKE ?", like, like)
	}
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	// Each finisher gets its own session so Count's statement does not leak
	// into Find.
	var total int64
	if err := query.Session(&gorm.Session{}).Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := query.Session(&gorm.Session{}).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}

func (r *productRepository) ToggleActive(ctx context.Context, id string) (*models.Product, error) {
	product, err := r.GetByID(ctx, id)
	if err != nil || product == nil {
		return product, err
	}
	product.IsActive = !product.IsActive
	product.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Model(product).Select("is_active", "updated_at").Updates(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}
