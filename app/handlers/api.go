package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aureliajewels/jewelry-cms/app/helpers"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

// Envelope is the uniform response wrapper every endpoint returns.
type Envelope struct {
	Success    bool                 `json:"success"`
	Data       interface{}          `json:"data,omitempty"`
	Message    string               `json:"message,omitempty"`
	Errors     []helpers.FieldError `json:"errors,omitempty"`
	Pagination *Pagination          `json:"pagination,omitempty"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewRender() *render.Render {
	return render.New(render.Options{
		DisableHTTPErrorRendering: true,
	})
}

func NewPagination(page, limit int, total int64) *Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

func writeData(rnd *render.Render, w http.ResponseWriter, status int, data interface{}) {
	_ = rnd.JSON(w, status, Envelope{Success: true, Data: data})
}

func writePage(rnd *render.Render, w http.ResponseWriter, data interface{}, pagination *Pagination) {
	_ = rnd.JSON(w, http.StatusOK, Envelope{Success: true, Data: data, Pagination: pagination})
}

func writeMessage(rnd *render.Render, w http.ResponseWriter, status int, message string) {
	_ = rnd.JSON(w, status, Envelope{Success: true, Message: message})
}

func writeFieldErrors(rnd *render.Render, w http.ResponseWriter, fields []helpers.FieldError) {
	_ = rnd.JSON(w, http.StatusBadRequest, Envelope{
		Success: false,
		Message: helpers.JoinFieldErrors(fields),
		Errors:  fields,
	})
}

// writeError maps expected failures to their status codes and hides
// everything else behind a logged 500.
func writeError(rnd *render.Render, w http.ResponseWriter, err error) {
	if appErr, ok := helpers.AsAppError(err); ok {
		status := http.StatusInternalServerError
		switch appErr.Kind {
		case helpers.KindValidation, helpers.KindConflict:
			status = http.StatusBadRequest
		case helpers.KindNotFound:
			status = http.StatusNotFound
		case helpers.KindAuth:
			status = http.StatusUnauthorized
		case helpers.KindForbidden:
			status = http.StatusForbidden
		}
		_ = rnd.JSON(w, status, Envelope{
			Success: false,
			Message: appErr.Message,
			Errors:  appErr.Fields,
		})
		return
	}

	logrus.Errorf("Unexpected error: %v", err)
	_ = rnd.JSON(w, http.StatusInternalServerError, Envelope{
		Success: false,
		Message: "Internal server error",
	})
}

func parsePageParams(r *http.Request) (page, limit int, search string) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit, r.URL.Query().Get("search")
}

// formValue reports whether a field was present in the submitted form, so
// partial updates leave omitted fields untouched.
func formValue(r *http.Request, key string) (string, bool) {
	if r.Form == nil {
		return "", false
	}
	values, ok := r.Form[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

const maxUploadMemory = 32 << 20

func parseAnyForm(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(maxUploadMemory)
	}
	return r.ParseForm()
}
