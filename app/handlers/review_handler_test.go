package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/aureliajewels/jewelry-cms/app/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewRepo struct {
	reviews map[string]*models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*models.Review)}
}

func (f *fakeReviewRepo) Create(_ context.Context, review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	stored := *review
	f.reviews[review.ID] = &stored
	return nil
}

func (f *fakeReviewRepo) GetByID(_ context.Context, id string) (*models.Review, error) {
	review, ok := f.reviews[id]
	if !ok {
		return nil, nil
	}
	copied := *review
	return &copied, nil
}

func (f *fakeReviewRepo) GetAll(_ context.Context) ([]models.Review, error) {
	out := make([]models.Review, 0, len(f.reviews))
	for _, review := range f.reviews {
		out = append(out, *review)
	}
	return out, nil
}

func (f *fakeReviewRepo) GetActiveByProductID(_ context.Context, productID string) ([]models.Review, error) {
	var out []models.Review
	for _, review := range f.reviews {
		if review.ProductID == productID && review.IsActive {
			out = append(out, *review)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Update(_ context.Context, review *models.Review) error {
	stored := *review
	f.reviews[review.ID] = &stored
	return nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id string) error {
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewRepo) ToggleActive(_ context.Context, id string) (*models.Review, error) {
	review, ok := f.reviews[id]
	if !ok {
		return nil, nil
	}
	review.IsActive = !review.IsActive
	copied := *review
	return &copied, nil
}

func TestCreateReview(t *testing.T) {
	repo := newFakeReviewRepo()
	h := NewReviewHandler(repo, NewRender())

	rec, envelope := postForm(t, h.Create, url.Values{
		"productId": {"p1"},
		"author":    {"Priya"},
		"rating":    {"5"},
		"comment":   {"Stunning piece."},
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, envelope.Success)
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	h := NewReviewHandler(newFakeReviewRepo(), NewRender())

	for _, rating := range []string{"0", "6", "abc"} {
		rec, envelope := postForm(t, h.Create, url.Values{
			"productId": {"p1"},
			"author":    {"Priya"},
			"rating":    {rating},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, envelope.Success)
	}
}

func TestCreateReviewRequiresRatingAndAuthor(t *testing.T) {
	h := NewReviewHandler(newFakeReviewRepo(), NewRender())

	rec, envelope := postForm(t, h.Create, url.Values{"productId": {"p1"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, envelope.Errors, 2)
}

func TestPublicListRequiresProductID(t *testing.T) {
	h := NewReviewHandler(newFakeReviewRepo(), NewRender())

	req := httptest.NewRequest(http.MethodGet, "/api/reviews", nil)
	rec := httptest.NewRecorder()
	h.PublicList(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToggleReviewTwiceRestoresStatus(t *testing.T) {
	repo := newFakeReviewRepo()
	review := &models.Review{ProductID: "p1", Author: "A", Rating: 5, IsActive: true}
	require.NoError(t, repo.Create(context.Background(), review))

	h := NewReviewHandler(repo, NewRender())
	toggle := func() models.Review {
		req := httptest.NewRequest(http.MethodPatch, "/api/reviews/"+review.ID+"/toggle", nil)
		req = mux.SetURLVars(req, map[string]string{"id": review.ID})
		rec := httptest.NewRecorder()
		h.Toggle(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var envelope struct {
			Data models.Review `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		return envelope.Data
	}

	assert.False(t, toggle().IsActive)
	assert.True(t, toggle().IsActive)
}

func TestPublicListFiltersInactive(t *testing.T) {
	repo := newFakeReviewRepo()
	require.NoError(t, repo.Create(context.Background(), &models.Review{ProductID: "p1", Author: "A", Rating: 5, IsActive: true}))
	require.NoError(t, repo.Create(context.Background(), &models.Review{ProductID: "p1", Author: "B", Rating: 1, IsActive: false}))
	require.NoError(t, repo.Create(context.Background(), &models.Review{ProductID: "p2", Author: "C", Rating: 4, IsActive: true}))

	h := NewReviewHandler(repo, NewRender())
	req := httptest.NewRequest(http.MethodGet, "/api/reviews?productId=p1", nil)
	rec := httptest.NewRecorder()
	h.PublicList(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool            `json:"success"`
		Data    []models.Review `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "A", envelope.Data[0].Author)
}
