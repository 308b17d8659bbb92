package repositories

import (
	"context"

	"github.com/aureliajewels/jewelry-cms/app/models"
	"gorm.io/gorm"
)

// ContentPtr constrains T to the content entities so one repository serves
// banners, hero sections, services, testimonials and videos without restating
// the same CRUD per table.
type ContentPtr[T any] interface {
	*T
	models.ContentEntity
}

type ContentRepository[T any, PT ContentPtr[T]] struct {
	db *gorm.DB
}

func NewContentRepository[T any, PT ContentPtr[T]](db *gorm.DB) *ContentRepository[T, PT] {
	return &ContentRepository[T, PT]{db: db}
}

func (r *ContentRepository[T, PT]) GetAll(ctx context.Context) ([]T, error) {
	var rows []T
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetActive backs the public storefront variants: active rows only, display
// order.
func (r *ContentRepository[T, PT]) GetActive(ctx context.Context) ([]T, error) {
	var rows []T
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ContentRepository[T, PT]) GetByID(ctx context.Context, id string) (PT, error) {
	var row T
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return PT(&row), nil
}

func (r *ContentRepository[T, PT]) Create(ctx context.Context, row PT) error {
	row.EnsureID()
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *ContentRepository[T, PT]) Update(ctx context.Context, row PT) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *ContentRepository[T, PT]) Delete(ctx context.Context, id string) error {
	var row T
	return r.db.WithContext(ctx).Delete(&row, "id = ?", id).Error
}

func (r *ContentRepository[T, PT]) ToggleActive(ctx context.Context, id string) (PT, error) {
	row, err := r.GetByID(ctx, id)
	if err != nil || row == nil {
		return row, err
	}
	row.SetActive(!row.Active())
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}
