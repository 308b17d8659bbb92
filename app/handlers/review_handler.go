package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aureliajewels/jewelry-cms/app/helpers"
	"github.com/aureliajewels/jewelry-cms/app/models"
	"github.com/aureliajewels/jewelry-cms/app/repositories"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type ReviewHandler struct {
	repo   repositories.ReviewRepositoryImpl
	render *render.Render
}

func NewReviewHandler(repo repositories.ReviewRepositoryImpl, rnd *render.Render) *ReviewHandler {
	return &ReviewHandler{repo: repo, render: rnd}
}

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.repo.GetAll(r.Context())
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusOK, reviews)
}

// PublicList returns the active reviews of one product for the storefront
// detail page.
func (h *ReviewHandler) PublicList(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Query().Get("productId")
	if productID == "" {
		writeFieldErrors(h.render, w, []helpers.FieldError{{Path: "productId", Message: "ProductId is required."}})
		return
	}
	reviews, err := h.repo.GetActiveByProductID(r.Context(), productID)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusOK, reviews)
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	review := &models.Review{IsActive: true}
	if fields := h.bind(r, review, true); len(fields) > 0 {
		writeFieldErrors(h.render, w, fields)
		return
	}

	if err := h.repo.Create(r.Context(), review); err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusCreated, review)
}

func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	review, err := h.repo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if review == nil {
		writeError(h.render, w, helpers.NewNotFoundError("Review not found"))
		return
	}

	if fields := h.bind(r, review, false); len(fields) > 0 {
		writeFieldErrors(h.render, w, fields)
		return
	}

	if err := h.repo.Update(r.Context(), review); err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusOK, review)
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	review, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if review == nil {
		writeError(h.render, w, helpers.NewNotFoundError("Review not found"))
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		writeError(h.render, w, err)
		return
	}
	writeMessage(h.render, w, http.StatusOK, "Review deleted")
}

func (h *ReviewHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	review, err := h.repo.ToggleActive(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if review == nil {
		writeError(h.render, w, helpers.NewNotFoundError("Review not found"))
		return
	}
	writeData(h.render, w, http.StatusOK, review)
}

func (h *ReviewHandler) bind(r *http.Request, review *models.Review, isCreate bool) []helpers.FieldError {
	var fields []helpers.FieldError
	if err := parseAnyForm(r); err != nil {
		return []helpers.FieldError{{Path: "body", Message: "Failed to parse form payload."}}
	}

	if v, ok := formValue(r, "productId"); ok {
		review.ProductID = strings.TrimSpace(v)
	}
	if v, ok := formValue(r, "author"); ok {
		review.Author = strings.TrimSpace(v)
	}
	if isCreate && review.Author == "" {
		fields = append(fields, helpers.FieldError{Path: "author", Message: "Author is required."})
	}
	if v, ok := formValue(r, "comment"); ok {
		review.Comment = strings.TrimSpace(v)
	}
	if v, ok := formValue(r, "rating"); ok {
		rating, err := strconv.Atoi(v)
		if err != nil || rating < 1 || rating > 5 {
			fields = append(fields, helpers.FieldError{Path: "rating", Message: "Rating must be between 1 and 5."})
		} else {
			review.Rating = rating
		}
	} else if isCreate {
		fields = append(fields, helpers.FieldError{Path: "rating", Message: "Rating is required."})
	}
	return fields
}
