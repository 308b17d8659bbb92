package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/aureliajewels/jewelry-cms/app/helpers"
	"github.com/aureliajewels/jewelry-cms/app/models"
	"github.com/aureliajewels/jewelry-cms/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type CategoryForm struct {
	Title           string   `validate:"required,max=100"`
	Link            string   `validate:"required,max=255"`
	Icon            *string  `validate:"omitempty,max=255"`
	Image           *string  `validate:"omitempty,max=255"`
	BreadcrumbImage *string  `validate:"omitempty,max=255"`
	SortOrder       *int     `validate:"-"`
	Subcategories   []string `validate:"-"`
}

type SubcategoryForm struct {
	Name      string `validate:"required,max=100"`
	SortOrder *int   `validate:"-"`
}

type CategoryService struct {
	repo     repositories.CategoryRepositoryImpl
	validate *validator.Validate
}

func NewCategoryService(repo repositories.CategoryRepositoryImpl) *CategoryService {
	return &CategoryService{
		repo:     repo,
		validate: validator.New(),
	}
}

// ListCategories prefers the aggregated fetch. When that fails it rebuilds
// the same result from the plain category list plus one subcategory fetch per
// category; a category whose subcategory fetch also fails gets an empty list
// instead of failing the whole listing.
func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.GetAllWithSubcategories(ctx)
	if err == nil {
		for i := range categories {
			if categories[i].Subcategories == nil {
				categories[i].Subcategories = []models.Subcategory{}
			}
		}
		return categories, nil
	}

	logrus.Warnf("Aggregated category fetch failed, falling back to per-category assembly: %v", err)

	categories, err = s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	for i := range categories {
		subcategories, subErr := s.repo.GetSubcategoriesByCategoryID(ctx, categories[i].ID)
		if subErr != nil {
			logrus.Warnf("Subcategory fetch for category %s failed, defaulting to empty: %v", categories[i].ID, subErr)
			subcategories = []models.Subcategory{}
		}
		if subcategories == nil {
			subcategories = []models.Subcategory{}
		}
		categories[i].Subcategories = subcategories
	}
	return categories, nil
}

// ListCategoriesFlat returns categories without their subcategory lists.
func (s *CategoryService) ListCategoriesFlat(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get category %s: %w", id, err)
	}
	if category == nil {
		return nil, helpers.NewNotFoundError("Category not found")
	}
	return category, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, form CategoryForm) (*models.Category, error) {
	form.Title = strings.TrimSpace(form.Title)
	form.Link = strings.TrimSpace(form.Link)

	if err := s.validate.Struct(&form); err != nil {
		fields := helpers.FormatValidationErrors(err.(validator.ValidationErrors))
		return nil, helpers.NewValidationError(helpers.JoinFieldErrors(fields), fields)
	}

	category := &models.Category{
		Title:           form.Title,
		Link:            form.Link,
		Icon:            form.Icon,
		Image:           form.Image,
		BreadcrumbImage: form.BreadcrumbImage,
		IsActive:        true,
	}
	if form.SortOrder != nil {
		category.SortOrder = *form.SortOrder
	}

	names := trimNonEmpty(form.Subcategories)
	if err := s.repo.CreateWithSubcategories(ctx, category, names); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	if category.Subcategories == nil {
		category.Subcategories = []models.Subcategory{}
	}
	return category, nil
}

// UpdateCategory merges only the provided fields into the stored row. New
// subcategory names, when present, are appended after the existing ones.
func (s *CategoryService) UpdateCategory(ctx context.Context, id string, form CategoryForm) (*models.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load category %s: %w", id, err)
	}
	if category == nil {
		return nil, helpers.NewNotFoundError("Category not found")
	}

	if title := strings.TrimSpace(form.Title); title != "" {
		category.Title = title
	}
	if link := strings.TrimSpace(form.Link); link != "" {
		category.Link = link
	}
	if form.Icon != nil {
		category.Icon = form.Icon
	}
	if form.Image != nil {
		category.Image = form.Image
	}
	if form.BreadcrumbImage != nil {
		category.BreadcrumbImage = form.BreadcrumbImage
	}
	if form.SortOrder != nil {
		category.SortOrder = *form.SortOrder
	}

	check := CategoryForm{Title: category.Title, Link: category.Link}
	if err := s.validate.Struct(&check); err != nil {
		fields := helpers.FormatValidationErrors(err.(validator.ValidationErrors))
		return nil, helpers.NewValidationError(helpers.JoinFieldErrors(fields), fields)
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category %s: %w", id, err)
	}

	for i, name := range trimNonEmpty(form.Subcategories) {
		sub := &models.Subcategory{
			Name:       name,
			CategoryID: category.ID,
			IsActive:   true,
			SortOrder:  len(category.Subcategories) + i,
		}
		if err := s.repo.CreateSubcategory(ctx, sub); err != nil {
			return nil, fmt.Errorf("failed to append subcategory %q: %w", name, err)
		}
		category.Subcategories = append(category.Subcategories, *sub)
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load category %s: %w", id, err)
	}
	if category == nil {
		return helpers.NewNotFoundError("Category not found")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", id, err)
	}
	return nil
}

func (s *CategoryService) ToggleCategoryStatus(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.repo.ToggleActive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle category %s: %w", id, err)
	}
	if category == nil {
		return nil, helpers.NewNotFoundError("Category not found")
	}
	return category, nil
}

func (s *CategoryService) CreateSubcategory(ctx context.Context, categoryID string, form SubcategoryForm) (*models.Subcategory, error) {
	form.Name = strings.TrimSpace(form.Name)
	if err := s.validate.Struct(&form); err != nil {
		fields := helpers.FormatValidationErrors(err.(validator.ValidationErrors))
		return nil, helpers.NewValidationError(helpers.JoinFieldErrors(fields), fields)
	}

	category, err := s.repo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load category %s: %w", categoryID, err)
	}
	if category == nil {
		return nil, helpers.NewNotFoundError("Category not found")
	}

	sub := &models.Subcategory{
		Name:       form.Name,
		CategoryID: categoryID,
		IsActive:   true,
		SortOrder:  len(category.Subcategories),
	}
	if form.SortOrder != nil {
		sub.SortOrder = *form.SortOrder
	}
	if err := s.repo.CreateSubcategory(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create subcategory: %w", err)
	}
	return sub, nil
}

func (s *CategoryService) UpdateSubcategory(ctx context.Context, id string, form SubcategoryForm) (*models.Subcategory, error) {
	sub, err := s.repo.GetSubcategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load subcategory %s: %w", id, err)
	}
	if sub == nil {
		return nil, helpers.NewNotFoundError("Subcategory not found")
	}

	if name := strings.TrimSpace(form.Name); name != "" {
		sub.Name = name
	}
	if form.SortOrder != nil {
		sub.SortOrder = *form.SortOrder
	}

	if err := s.repo.UpdateSubcategory(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to update subcategory %s: %w", id, err)
	}
	return sub, nil
}

func (s *CategoryService) DeleteSubcategory(ctx context.Context, id string) error {
	sub, err := s.repo.GetSubcategoryByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load subcategory %s: %w", id, err)
	}
	if sub == nil {
		return helpers.NewNotFoundError("Subcategory not found")
	}
	if err := s.repo.DeleteSubcategory(ctx, id); err != nil {
		return fmt.Errorf("failed to delete subcategory %s: %w", id, err)
	}
	return nil
}

func (s *CategoryService) ToggleSubcategoryStatus(ctx context.Context, id string) (*models.Subcategory, error) {
	sub, err := s.repo.ToggleSubcategoryActive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle subcategory %s: %w", id, err)
	}
	if sub == nil {
		return nil, helpers.NewNotFoundError("Subcategory not found")
	}
	return sub, nil
}

func trimNonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
