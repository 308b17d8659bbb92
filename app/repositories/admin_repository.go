package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/aureliajewels/jewelry-cms/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminRepositoryImpl interface {
	Create(ctx context.Context, admin *models.Admin, roleNames []string) error
	GetByID(ctx context.Context, id string) (*models.Admin, error)
	GetByEmailOrUsername(ctx context.Context, email, username string) (*models.Admin, error)
	GetByLogin(ctx context.Context, login string) (*models.Admin, error)
	GetAll(ctx context.Context) ([]models.Admin, error)
	Update(ctx context.Context, admin *models.Admin, roleNames []string) error
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (*models.Admin, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepositoryImpl {
	return &adminRepository{db: db}
}

// Create persists the admin and its role links in one transaction so a role
// failure never leaves a role-less account behind.
func (r *adminRepository) Create(ctx context.Context, admin *models.Admin, roleNames []string) error {
	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Roles").Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}
		roles, err := r.resolveRoles(tx, roleNames)
		if err != nil {
			return err
		}
		if len(roles) > 0 {
			if err := tx.Model(admin).Association("Roles").Append(roles); err != nil {
				return fmt.Errorf("failed to attach roles: %w", err)
			}
		}
		admin.Roles = roles
		return nil
	})
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).Preload("Roles").First(&admin, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) GetByEmailOrUsername(ctx context.Context, email, username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).
		Where("email = ? OR username = ?", email, username).
		First(&admin).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// GetByLogin accepts either email or username, the way the dashboard login
// form does.
func (r *adminRepository) GetByLogin(ctx context.Context, login string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Where("email = ? OR username = ?", login, login).
		First(&admin).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) GetAll(ctx context.Context) ([]models.Admin, error) {
	var admins []models.Admin
	err := r.db.WithContext(ctx).Preload("Roles").Order("created_at ASC").Find(&admins).Error
	if err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *adminRepository) Update(ctx context.Context, admin *models.Admin, roleNames []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		admin.UpdatedAt = time.Now()
		if err := tx.Omit("Roles").Save(admin).Error; err != nil {
			return fmt.Errorf("failed to update admin: %w", err)
		}
		if roleNames == nil {
			return nil
		}
		roles, err := r.resolveRoles(tx, roleNames)
		if err != nil {
			return err
		}
		if err := tx.Model(admin).Association("Roles").Replace(roles); err != nil {
			return fmt.Errorf("failed to replace roles: %w", err)
		}
		admin.Roles = roles
		return nil
	})
}

func (r *adminRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.AdminRole{}, "admin_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete admin role links: %w", err)
		}
		return tx.Delete(&models.Admin{}, "id = ?", id).Error
	})
}

func (r *adminRepository) ToggleActive(ctx context.Context, id string) (*models.Admin, error) {
	admin, err := r.GetByID(ctx, id)
	if err != nil || admin == nil {
		return admin, err
	}
	admin.IsActive = !admin.IsActive
	admin.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Model(admin).Select("is_active", "updated_at").Updates(admin).Error; err != nil {
		return nil, err
	}
	return admin, nil
}

func (r *adminRepository) resolveRoles(tx *gorm.DB, roleNames []string) ([]models.Role, error) {
	roles := make([]models.Role, 0, len(roleNames))
	for _, name := range roleNames {
		var role models.Role
		err := tx.Where("name = ?", name).
			Attrs(models.Role{ID: uuid.New().String()}).
			FirstOrCreate(&role).Error
		if err != nil {
			return nil, fmt.Errorf("failed to resolve role %q: %w", name, err)
		}
		roles = append(roles, role)
	}
	return roles, nil
}
