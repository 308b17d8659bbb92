package repositories

import (
	"context"
	"time"

	"github.com/aureliajewels/jewelry-cms/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepositoryImpl interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id string) (*models.Review, error)
	GetAll(ctx context.Context) ([]models.Review, error)
	GetActiveByProductID(ctx context.Context, productID string) ([]models.Review, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (*models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepositoryImpl {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetAll(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) GetActiveByProductID(ctx context.Context, productID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND is_active = ?", productID, true).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Review{}, "id = ?", id).Error
}

func (r *reviewRepository) ToggleActive(ctx context.Context, id string) (*models.Review, error) {
	review, err := r.GetByID(ctx, id)
	if err != nil || review == nil {
		return review, err
	}
	review.IsActive = !review.IsActive
	review.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Model(review).Select("is_active", "updated_at").Updates(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}
