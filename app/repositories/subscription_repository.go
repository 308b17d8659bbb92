package repositories

import (
	"context"
	"time"

	"github.com/aureliajewels/jewelry-cms/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionRepositoryImpl interface {
	Create(ctx context.Context, subscription *models.EmailSubscription) error
	GetByID(ctx context.Context, id string) (*models.EmailSubscription, error)
	GetByEmail(ctx context.Context, email string) (*models.EmailSubscription, error)
	GetPage(ctx context.Context, page, limit int, search string) ([]models.EmailSubscription, int64, error)
	GetFiltered(ctx context.Context, search string) ([]models.EmailSubscription, error)
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (*models.EmailSubscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepositoryImpl {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(ctx context.Context, subscription *models.EmailSubscription) error {
	if subscription.ID == "" {
		subscription.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(subscription).Error
}

func (r *subscriptionRepository) GetByID(ctx context.Context, id string) (*models.EmailSubscription, error) {
	var subscription models.EmailSubscription
	err := r.db.WithContext(ctx).First(&subscription, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &subscription, nil
}

func (r *subscriptionRepository) GetByEmail(ctx context.Context, email string) (*models.EmailSubscription, error) {
	var subscription models.EmailSubscription
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&subscription).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &subscription, nil
}

func (r *subscriptionRepository) GetPage(ctx context.Context, page, limit int, search string) ([]models.EmailSubscription, int64, error) {
	query := r.searchQuery(ctx, search)

	// Each finisher gets its own session so Count's statement does not leak
	// into Find.
	var total int64
	if err := query.Session(&gorm.Session{}).Model(&models.EmailSubscription{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subscriptions []models.EmailSubscription
	err := query.Session(&gorm.Session{}).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&subscriptions).Error
	if err != nil {
		return nil, 0, err
	}
	return subscriptions, total, nil
}

// GetFiltered returns the full filtered list for exports, without paging.
func (r *subscriptionRepository) GetFiltered(ctx context.Context, search string) ([]models.EmailSubscription, error) {
	var subscriptions []models.EmailSubscription
	err := r.searchQuery(ctx, search).Order("created_at DESC").Find(&subscriptions).Error
	if err != nil {
		return nil, err
	}
	return subscriptions, nil
}

func (r *subscriptionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.EmailSubscription{}, "id = ?", id).Error
}

func (r *subscriptionRepository) ToggleActive(ctx context.Context, id string) (*models.EmailSubscription, error) {
	subscription, err := r.GetByID(ctx, id)
	if err != nil || subscription == nil {
		return subscription, err
	}
	subscription.IsActive = !subscription.IsActive
	subscription.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Model(subscription).Select("is_active", "updated_at").Updates(subscription).Error; err != nil {
		return nil, err
	}
	return subscription, nil
}

func (r *subscriptionRepository) searchQuery(ctx context.Context, search string) *gorm.DB {
	query := r.db.WithContext(ctx)
	if search != "" {
		query = query.Where("email LIKE ?", "%"+search+"%")
	}
	return query
}
