package handlers

import (
	"net/http"
	"strings"

	"github.com/aureliajewels/jewelry-cms/app/helpers"
	"github.com/aureliajewels/jewelry-cms/app/models"
	"github.com/aureliajewels/jewelry-cms/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type AdminAccountHandler struct {
	repo     repositories.AdminRepositoryImpl
	validate *validator.Validate
	render   *render.Render
}

type adminForm struct {
	Name     string `validate:"required,max=100"`
	Email    string `validate:"required,email,max=100"`
	Username string `validate:"required,min=3,max=50"`
	Password string `validate:"required,min=8,max=72"`
}

func NewAdminAccountHandler(repo repositories.AdminRepositoryImpl, rnd *render.Render) *AdminAccountHandler {
	return &AdminAccountHandler{
		repo:     repo,
		validate: validator.New(),
		render:   rnd,
	}
}

func (h *AdminAccountHandler) List(w http.ResponseWriter, r *http.Request) {
	admins, err := h.repo.GetAll(r.Context())
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusOK, admins)
}

func (h *AdminAccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseAnyForm(r); err != nil {
		writeFieldErrors(h.render, w, []helpers.FieldError{{Path: "body", Message: "Failed to parse form payload."}})
		return
	}

	form := adminForm{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Email:    strings.ToLower(strings.TrimSpace(r.FormValue("email"))),
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
	}
	if err := h.validate.Struct(&form); err != nil {
		writeFieldErrors(h.render, w, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	existing, err := h.repo.GetByEmailOrUsername(r.Context(), form.Email, form.Username)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if existing != nil {
		writeError(h.render, w, helpers.NewConflictError("Admin with this email or username already exists"))
		return
	}

	hashed := helpers.HashPassword(form.Password)
	if hashed == "" {
		writeError(h.render, w, helpers.NewValidationError("Failed to hash password", nil))
		return
	}

	admin := &models.Admin{
		Name:     form.Name,
		Email:    form.Email,
		Username: form.Username,
		Password: hashed,
		IsActive: true,
	}
	if err := h.repo.Create(r.Context(), admin, h.roleNames(r)); err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusCreated, admin)
}

func (h *AdminAccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	admin, err := h.repo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if admin == nil {
		writeError(h.render, w, helpers.NewNotFoundError("Admin not found"))
		return
	}

	if err := parseAnyForm(r); err != nil {
		writeFieldErrors(h.render, w, []helpers.FieldError{{Path: "body", Message: "Failed to parse form payload."}})
		return
	}

	if v, ok := formValue(r, "name"); ok {
		admin.Name = strings.TrimSpace(v)
	}
	email := admin.Email
	username := admin.Username
	if v, ok := formValue(r, "email"); ok {
		email = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := formValue(r, "username"); ok {
		username = strings.TrimSpace(v)
	}

	if email != admin.Email || username != admin.Username {
		existing, err := h.repo.GetByEmailOrUsername(r.Context(), email, username)
		if err != nil {
			writeError(h.render, w, err)
			return
		}
		if existing != nil && existing.ID != admin.ID {
			writeError(h.render, w, helpers.NewConflictError("Admin with this email or username already exists"))
			return
		}
		admin.Email = email
		admin.Username = username
	}

	if v, ok := formValue(r, "password"); ok && v != "" {
		if len(v) < 8 {
			writeFieldErrors(h.render, w, []helpers.FieldError{{Path: "password", Message: "Password must be at least 8 characters."}})
			return
		}
		hashed := helpers.HashPassword(v)
		if hashed == "" {
			writeError(h.render, w, helpers.NewValidationError("Failed to hash password", nil))
			return
		}
		admin.Password = hashed
	}

	check := adminForm{Name: admin.Name, Email: admin.Email, Username: admin.Username, Password: "placeholder"}
	if err := h.validate.Struct(&check); err != nil {
		writeFieldErrors(h.render, w, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	var roles []string
	if _, ok := r.Form["roles"]; ok {
		roles = h.roleNames(r)
	}
	if err := h.repo.Update(r.Context(), admin, roles); err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusOK, admin)
}

func (h *AdminAccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	admin, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if admin == nil {
		writeError(h.render, w, helpers.NewNotFoundError("Admin not found"))
		return
	}

	// The requester must not delete their own account mid-session.
	if requesterID, ok := r.Context().Value(helpers.ContextKeyAdminID).(string); ok && requesterID == id {
		writeError(h.render, w, helpers.NewForbiddenError("You cannot delete your own account"))
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		writeError(h.render, w, err)
		return
	}
	writeMessage(h.render, w, http.StatusOK, "Admin deleted")
}

func (h *AdminAccountHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	admin, err := h.repo.ToggleActive(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if admin == nil {
		writeError(h.render, w, helpers.NewNotFoundError("Admin not found"))
		return
	}
	writeData(h.render, w, http.StatusOK, admin)
}

// roleNames reads the submitted role list, defaulting new accounts to editor.
func (h *AdminAccountHandler) roleNames(r *http.Request) []string {
	raw := r.Form["roles"]
	names := make([]string, 0, len(raw))
	for _, name := range raw {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		names = append(names, models.RoleEditor)
	}
	return names
}
