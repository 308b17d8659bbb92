package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/aureliajewels/jewelry-cms/app/helpers"
	"github.com/aureliajewels/jewelry-cms/app/services"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

type CategoryHandler struct {
	service  *services.CategoryService
	uploader *helpers.Uploader
	render   *render.Render
}

func NewCategoryHandler(service *services.CategoryService, uploader *helpers.Uploader, rnd *render.Render) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		uploader: uploader,
		render:   rnd,
	}
}

// List returns all categories; `?includeSubcategories=true` nests the owned
// subcategories into each row.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("includeSubcategories") == "true" {
		categories, err := h.service.ListCategories(r.Context())
		if err != nil {
			writeError(h.render, w, err)
			return
		}
		writeData(h.render, w, http.StatusOK, categories)
		return
	}

	categories, err := h.service.ListCategoriesFlat(r.Context())
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusOK, categories)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	category, err := h.service.GetCategory(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusOK, category)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, fields, err := h.parseCategoryForm(r)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if len(fields) > 0 {
		writeFieldErrors(h.render, w, fields)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), form)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusCreated, category)
}

// CreateWithSubcategories is the JSON variant used by the dashboard's
// combined create form.
func (h *CategoryHandler) CreateWithSubcategories(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title         string   `json:"title"`
		Link          string   `json:"link"`
		SortOrder     *int     `json:"sortOrder"`
		Subcategories []string `json:"subcategories"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeFieldErrors(h.render, w, []helpers.FieldError{{Path: "body", Message: "Invalid JSON payload."}})
		return
	}

	form := services.CategoryForm{
		Title:         payload.Title,
		Link:          payload.Link,
		SortOrder:     payload.SortOrder,
		Subcategories: payload.Subcategories,
	}
	category, err := h.service.CreateCategory(r.Context(), form)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusCreated, category)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	form, fields, err := h.parseCategoryForm(r)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if len(fields) > 0 {
		writeFieldErrors(h.render, w, fields)
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), mux.Vars(r)["id"], form)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusOK, category)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCategory(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(h.render, w, err)
		return
	}
	writeMessage(h.render, w, http.StatusOK, "Category deleted")
}

func (h *CategoryHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	category, err := h.service.ToggleCategoryStatus(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusOK, category)
}

func (h *CategoryHandler) CreateSubcategory(w http.ResponseWriter, r *http.Request) {
	form, fields := h.parseSubcategoryForm(r)
	if len(fields) > 0 {
		writeFieldErrors(h.render, w, fields)
		return
	}

	sub, err := h.service.CreateSubcategory(r.Context(), mux.Vars(r)["id"], form)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusCreated, sub)
}

func (h *CategoryHandler) UpdateSubcategory(w http.ResponseWriter, r *http.Request) {
	form, fields := h.parseSubcategoryForm(r)
	if len(fields) > 0 {
		writeFieldErrors(h.render, w, fields)
		return
	}

	sub, err := h.service.UpdateSubcategory(r.Context(), mux.Vars(r)["id"], form)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusOK, sub)
}

func (h *CategoryHandler) DeleteSubcategory(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSubcategory(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(h.render, w, err)
		return
	}
	writeMessage(h.render, w, http.StatusOK, "Subcategory deleted")
}

func (h *CategoryHandler) ToggleSubcategory(w http.ResponseWriter, r *http.Request) {
	sub, err := h.service.ToggleSubcategoryStatus(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusOK, sub)
}

func (h *CategoryHandler) parseCategoryForm(r *http.Request) (services.CategoryForm, []helpers.FieldError, error) {
	var form services.CategoryForm
	if err := parseAnyForm(r); err != nil {
		return form, []helpers.FieldError{{Path: "body", Message: "Failed to parse form payload."}}, nil
	}

	form.Title, _ = formValue(r, "title")
	form.Link, _ = formValue(r, "link")
	if v, ok := formValue(r, "sortOrder"); ok {
		order, err := strconv.Atoi(v)
		if err != nil {
			return form, []helpers.FieldError{{Path: "sortOrder", Message: "SortOrder must be numeric."}}, nil
		}
		form.SortOrder = &order
	}
	if r.Form != nil {
		form.Subcategories = r.Form["subcategories"]
	}

	for field, target := range map[string]**string{
		"icon":            &form.Icon,
		"image":           &form.Image,
		"breadcrumbImage": &form.BreadcrumbImage,
	} {
		path, err := h.saveFormFile(r, field)
		if err != nil {
			logrus.Errorf("Failed to store uploaded %s: %v", field, err)
			return form, nil, err
		}
		if path != "" {
			p := path
			*target = &p
		}
	}
	return form, nil, nil
}

func (h *CategoryHandler) parseSubcategoryForm(r *http.Request) (services.SubcategoryForm, []helpers.FieldError) {
	var form services.SubcategoryForm

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var payload struct {
			Name      string `json:"name"`
			SortOrder *int   `json:"sortOrder"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			return form, []helpers.FieldError{{Path: "body", Message: "Invalid JSON payload."}}
		}
		form.Name = payload.Name
		form.SortOrder = payload.SortOrder
		return form, nil
	}

	if err := parseAnyForm(r); err != nil {
		return form, []helpers.FieldError{{Path: "body", Message: "Failed to parse form payload."}}
	}
	form.Name, _ = formValue(r, "name")
	if v, ok := formValue(r, "sortOrder"); ok {
		order, err := strconv.Atoi(v)
		if err != nil {
			return form, []helpers.FieldError{{Path: "sortOrder", Message: "SortOrder must be numeric."}}
		}
		form.SortOrder = &order
	}
	return form, nil
}

func (h *CategoryHandler) saveFormFile(r *http.Request, field string) (string, error) {
	if r.MultipartForm == nil {
		return "", nil
	}
	files := r.MultipartForm.File[field]
	if len(files) == 0 {
		return "", nil
	}
	return h.uploader.Save(files[0])
}
