package services

import (
	"context"
	"errors"
	"testing"

	"github.com/aureliajewels/jewelry-cms/app/helpers"
	"github.com/aureliajewels/jewelry-cms/app/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCategoryRepo is an in-memory stand-in whose aggregated and per-category
// fetches can be failed independently.
type fakeCategoryRepo struct {
	categories map[string]*models.Category
	subs       map[string][]models.Subcategory

	failAggregated bool
	failSubsFor    map[string]bool
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories:  make(map[string]*models.Category),
		subs:        make(map[string][]models.Subcategory),
		failSubsFor: make(map[string]bool),
	}
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	stored := *category
	f.categories[category.ID] = &stored
	return nil
}

func (f *fakeCategoryRepo) CreateWithSubcategories(ctx context.Context, category *models.Category, names []string) error {
	if err := f.Create(ctx, category); err != nil {
		return err
	}
	for i, name := range names {
		sub := models.Subcategory{
			ID:         uuid.New().String(),
			Name:       name,
			CategoryID: category.ID,
			IsActive:   true,
			SortOrder:  i,
		}
		f.subs[category.ID] = append(f.subs[category.ID], sub)
		category.Subcategories = append(category.Subcategories, sub)
	}
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*models.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	copied := *category
	copied.Subcategories = f.subs[id]
	return &copied, nil
}

func (f *fakeCategoryRepo) GetAll(_ context.Context) ([]models.Category, error) {
	out := make([]models.Category, 0, len(f.categories))
	for _, category := range f.categories {
		out = append(out, *category)
	}
	return out, nil
}

func (f *fakeCategoryRepo) GetAllWithSubcategories(ctx context.Context) ([]models.Category, error) {
	if f.failAggregated {
		return nil, errors.New("aggregated fetch failed")
	}
	categories, _ := f.GetAll(ctx)
	for i := range categories {
		categories[i].Subcategories = f.subs[categories[i].ID]
	}
	return categories, nil
}

func (f *fakeCategoryRepo) GetSubcategoriesByCategoryID(_ context.Context, categoryID string) ([]models.Subcategory, error) {
	if f.failSubsFor[categoryID] {
		return nil, errors.New("subcategory fetch failed")
	}
	return f.subs[categoryID], nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *models.Category) error {
	stored := *category
	f.categories[category.ID] = &stored
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	delete(f.categories, id)
	delete(f.subs, id)
	return nil
}

func (f *fakeCategoryRepo) ToggleActive(ctx context.Context, id string) (*models.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	category.IsActive = !category.IsActive
	return f.GetByID(ctx, id)
}

func (f *fakeCategoryRepo) CreateSubcategory(_ context.Context, sub *models.Subcategory) error {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	f.subs[sub.CategoryID] = append(f.subs[sub.CategoryID], *sub)
	return nil
}

func (f *fakeCategoryRepo) GetSubcategoryByID(_ context.Context, id string) (*models.Subcategory, error) {
	for _, subs := range f.subs {
		for _, sub := range subs {
			if sub.ID == id {
				copied := sub
				return &copied, nil
			}
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) UpdateSubcategory(_ context.Context, sub *models.Subcategory) error {
	subs := f.subs[sub.CategoryID]
	for i := range subs {
		if subs[i].ID == sub.ID {
			subs[i] = *sub
			return nil
		}
	}
	return nil
}

func (f *fakeCategoryRepo) DeleteSubcategory(_ context.Context, id string) error {
	for categoryID, subs := range f.subs {
		for i := range subs {
			if subs[i].ID == id {
				f.subs[categoryID] = append(subs[:i], subs[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

func (f *fakeCategoryRepo) ToggleSubcategoryActive(ctx context.Context, id string) (*models.Subcategory, error) {
	for categoryID, subs := range f.subs {
		for i := range subs {
			if subs[i].ID == id {
				f.subs[categoryID][i].IsActive = !subs[i].IsActive
				copied := f.subs[categoryID][i]
				return &copied, nil
			}
		}
	}
	return nil, nil
}

func TestCreateCategoryWithSubcategories(t *testing.T) {
	repo := newFakeCategoryRepo()
	service := NewCategoryService(repo)

	category, err := service.CreateCategory(context.Background(), CategoryForm{
		Title:         "  Rings  ",
		Link:          "/rings",
		Subcategories: []string{"Engagement", " ", "Wedding Bands"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Rings", category.Title)
	assert.True(t, category.IsActive)
	require.Len(t, category.Subcategories, 2)
	assert.Equal(t, 0, category.Subcategories[0].SortOrder)
	assert.Equal(t, 1, category.Subcategories[1].SortOrder)
}

func TestCreateCategoryValidation(t *testing.T) {
	service := NewCategoryService(newFakeCategoryRepo())

	_, err := service.CreateCategory(context.Background(), CategoryForm{Title: "", Link: ""})
	require.Error(t, err)

	appErr, ok := helpers.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, helpers.KindValidation, appErr.Kind)
	assert.Len(t, appErr.Fields, 2)
}

func TestListCategoriesUsesAggregatedFetch(t *testing.T) {
	repo := newFakeCategoryRepo()
	service := NewCategoryService(repo)

	_, err := service.CreateCategory(context.Background(), CategoryForm{
		Title: "Rings", Link: "/rings", Subcategories: []string{"Engagement"},
	})
	require.NoError(t, err)

	categories, err := service.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Len(t, categories[0].Subcategories, 1)
}

func TestListCategoriesFallsBackPerCategory(t *testing.T) {
	repo := newFakeCategoryRepo()
	service := NewCategoryService(repo)

	_, err := service.CreateCategory(context.Background(), CategoryForm{
		Title: "Rings", Link: "/rings", Subcategories: []string{"Engagement"},
	})
	require.NoError(t, err)

	repo.failAggregated = true
	categories, err := service.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Len(t, categories[0].Subcategories, 1)
}

func TestListCategoriesFallbackDefaultsToEmptySubcategories(t *testing.T) {
	repo := newFakeCategoryRepo()
	service := NewCategoryService(repo)

	good, err := service.CreateCategory(context.Background(), CategoryForm{
		Title: "Rings", Link: "/rings", Subcategories: []string{"Engagement"},
	})
	require.NoError(t, err)
	bad, err := service.CreateCategory(context.Background(), CategoryForm{
		Title: "Necklaces", Link: "/necklaces", Subcategories: []string{"Chains"},
	})
	require.NoError(t, err)

	repo.failAggregated = true
	repo.failSubsFor[bad.ID] = true

	categories, err := service.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)

	for _, category := range categories {
		require.NotNil(t, category.Subcategories)
		switch category.ID {
		case good.ID:
			assert.Len(t, category.Subcategories, 1)
		case bad.ID:
			assert.Empty(t, category.Subcategories)
		}
	}
}

func TestUpdateCategoryMergesPartialFields(t *testing.T) {
	repo := newFakeCategoryRepo()
	service := NewCategoryService(repo)

	created, err := service.CreateCategory(context.Background(), CategoryForm{Title: "Rings", Link: "/rings"})
	require.NoError(t, err)

	updated, err := service.UpdateCategory(context.Background(), created.ID, CategoryForm{Title: "Fine Rings"})
	require.NoError(t, err)
	assert.Equal(t, "Fine Rings", updated.Title)
	assert.Equal(t, "/rings", updated.Link)
}

func TestDeleteCategoryRemovesSubcategories(t *testing.T) {
	repo := newFakeCategoryRepo()
	service := NewCategoryService(repo)

	created, err := service.CreateCategory(context.Background(), CategoryForm{
		Title: "Rings", Link: "/rings", Subcategories: []string{"Engagement", "Wedding Bands"},
	})
	require.NoError(t, err)
	require.Len(t, created.Subcategories, 2)
	subID := created.Subcategories[0].ID

	require.NoError(t, service.DeleteCategory(context.Background(), created.ID))

	subs, err := repo.GetSubcategoriesByCategoryID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, subs)

	orphan, err := repo.GetSubcategoryByID(context.Background(), subID)
	require.NoError(t, err)
	assert.Nil(t, orphan)
}

func TestToggleCategoryTwiceRestoresStatus(t *testing.T) {
	repo := newFakeCategoryRepo()
	service := NewCategoryService(repo)

	created, err := service.CreateCategory(context.Background(), CategoryForm{Title: "Rings", Link: "/rings"})
	require.NoError(t, err)
	require.True(t, created.IsActive)

	toggled, err := service.ToggleCategoryStatus(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	restored, err := service.ToggleCategoryStatus(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, restored.IsActive)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	service := NewCategoryService(newFakeCategoryRepo())

	err := service.DeleteCategory(context.Background(), "missing")
	appErr, ok := helpers.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, helpers.KindNotFound, appErr.Kind)
}
