package repositories

import (
	"context"
	"time"

	"github.com/aureliajewels/jewelry-cms/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DistributorRepositoryImpl interface {
	Create(ctx context.Context, distributor *models.Distributor) error
	GetByID(ctx context.Context, id string) (*models.Distributor, error)
	GetByEmail(ctx context.Context, email string) (*models.Distributor, error)
	GetAll(ctx context.Context) ([]models.Distributor, error)
	Update(ctx context.Context, distributor *models.Distributor) error
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (*models.Distributor, error)
}

type distributorRepository struct {
	db *gorm.DB
}

func NewDistributorRepository(db *gorm.DB) DistributorRepositoryImpl {
	return &distributorRepository{db: db}
}

func (r *distributorRepository) Create(ctx context.Context, distributor *models.Distributor) error {
	if distributor.ID == "" {
		distributor.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(distributor).Error
}

func (r *distributorRepository) GetByID(ctx context.Context, id string) (*models.Distributor, error) {
	var distributor models.Distributor
	err := r.db.WithContext(ctx).First(&distributor, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &distributor, nil
}

func (r *distributorRepository) GetByEmail(ctx context.Context, email string) (*models.Distributor, error) {
	var distributor models.Distributor
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&distributor).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &distributor, nil
}

func (r *distributorRepository) GetAll(ctx context.Context) ([]models.Distributor, error) {
	var distributors []models.Distributor
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&distributors).Error
	if err != nil {
		return nil, err
	}
	return distributors, nil
}

func (r *distributorRepository) Update(ctx context.Context, distributor *models.Distributor) error {
	return r.db.WithContext(ctx).Save(distributor).Error
}

func (r *distributorRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Distributor{}, "id = ?", id).Error
}

func (r *distributorRepository) ToggleActive(ctx context.Context, id string) (*models.Distributor, error) {
	distributor, err := r.GetByID(ctx, id)
	if err != nil || distributor == nil {
		return distributor, err
	}
	distributor.IsActive = !distributor.IsActive
	distributor.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Model(distributor).Select("is_active", "updated_at").Updates(distributor).Error; err != nil {
		return nil, err
	}
	return distributor, nil
}
