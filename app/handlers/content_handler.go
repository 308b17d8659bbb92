package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/aureliajewels/jewelry-cms/app/helpers"
	"github.com/aureliajewels/jewelry-cms/app/repositories"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

// BindFunc copies the submitted form fields onto the row. On create every
// required field must be present; on update omitted fields are left as they
// are. The returned field errors, when non-empty, abort the request with 400.
type BindFunc[T any, PT repositories.ContentPtr[T]] func(r *http.Request, row PT, isCreate bool, uploader *helpers.Uploader) []helpers.FieldError

// ContentHandler serves the uniform list/create/update/delete/toggle surface
// for one content entity. Instantiated once per resource instead of restating
// the same controller per table.
type ContentHandler[T any, PT repositories.ContentPtr[T]] struct {
	resource string
	repo     *repositories.ContentRepository[T, PT]
	bind     BindFunc[T, PT]
	uploader *helpers.Uploader
	render   *render.Render
}

func NewContentHandler[T any, PT repositories.ContentPtr[T]](
	resource string,
	repo *repositories.ContentRepository[T, PT],
	bind BindFunc[T, PT],
	uploader *helpers.Uploader,
	rnd *render.Render,
) *ContentHandler[T, PT] {
	return &ContentHandler[T, PT]{
		resource: resource,
		repo:     repo,
		bind:     bind,
		uploader: uploader,
		render:   rnd,
	}
}

func (h *ContentHandler[T, PT]) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.repo.GetAll(r.Context())
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusOK, rows)
}

// PublicList backs the storefront: active rows only, display order.
func (h *ContentHandler[T, PT]) PublicList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.repo.GetActive(r.Context())
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusOK, rows)
}

func (h *ContentHandler[T, PT]) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseAnyForm(r); err != nil {
		writeFieldErrors(h.render, w, []helpers.FieldError{{Path: "body", Message: "Failed to parse form payload."}})
		return
	}

	var row T
	ptr := PT(&row)
	if fields := h.bind(r, ptr, true, h.uploader); len(fields) > 0 {
		writeFieldErrors(h.render, w, fields)
		return
	}

	if err := h.repo.Create(r.Context(), ptr); err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusCreated, ptr)
}

func (h *ContentHandler[T, PT]) Update(w http.ResponseWriter, r *http.Request) {
	row, err := h.repo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if row == nil {
		writeError(h.render, w, helpers.NewNotFoundError(h.resource+" not found"))
		return
	}

	if err := parseAnyForm(r); err != nil {
		writeFieldErrors(h.render, w, []helpers.FieldError{{Path: "body", Message: "Failed to parse form payload."}})
		return
	}
	if fields := h.bind(r, row, false, h.uploader); len(fields) > 0 {
		writeFieldErrors(h.render, w, fields)
		return
	}

	if err := h.repo.Update(r.Context(), row); err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusOK, row)
}

func (h *ContentHandler[T, PT]) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	row, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if row == nil {
		writeError(h.render, w, helpers.NewNotFoundError(h.resource+" not found"))
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		writeError(h.render, w, err)
		return
	}
	writeMessage(h.render, w, http.StatusOK, h.resource+" deleted")
}

func (h *ContentHandler[T, PT]) Toggle(w http.ResponseWriter, r *http.Request) {
	row, err := h.repo.ToggleActive(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if row == nil {
		writeError(h.render, w, helpers.NewNotFoundError(h.resource+" not found"))
		return
	}
	writeData(h.render, w, http.StatusOK, row)
}

// formFile pulls one uploaded file out of a parsed multipart form.
func formFile(r *http.Request, field string) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	files := r.MultipartForm.File[field]
	if len(files) == 0 {
		return nil
	}
	return files[0]
}

// bindMedia stores a replacement upload and swaps the reference, removing the
// previous file best-effort.
func bindMedia(r *http.Request, field string, target **string, uploader *helpers.Uploader) *helpers.FieldError {
	file := formFile(r, field)
	if file == nil {
		return nil
	}
	path, err := uploader.Save(file)
	if err != nil {
		return &helpers.FieldError{Path: field, Message: "Failed to store uploaded file."}
	}
	if *target != nil {
		uploader.Remove(**target)
	}
	*target = &path
	return nil
}
