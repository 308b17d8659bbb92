package handlers

import (
	"net/http"
	"strings"

	"github.com/aureliajewels/jewelry-cms/app/helpers"
	"github.com/aureliajewels/jewelry-cms/app/models"
	"github.com/aureliajewels/jewelry-cms/app/repositories"
	"github.com/aureliajewels/jewelry-cms/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type DistributorHandler struct {
	repo         repositories.DistributorRepositoryImpl
	sessionStore sessions.SessionStore
	validate     *validator.Validate
	render       *render.Render
}

type distributorForm struct {
	Name     string `validate:"required,max=100"`
	Email    string `validate:"required,email,max=100"`
	Phone    string `validate:"omitempty,max=20"`
	Company  string `validate:"omitempty,max=150"`
	Password string `validate:"required,min=8,max=72"`
}

func NewDistributorHandler(repo repositories.DistributorRepositoryImpl, sessionStore sessions.SessionStore, rnd *render.Render) *DistributorHandler {
	return &DistributorHandler{
		repo:         repo,
		sessionStore: sessionStore,
		validate:     validator.New(),
		render:       rnd,
	}
}

// Register is the public wholesale signup.
func (h *DistributorHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := parseAnyForm(r); err != nil {
		writeFieldErrors(h.render, w, []helpers.FieldError{{Path: "body", Message: "Failed to parse form payload."}})
		return
	}

	form := distributorForm{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Email:    strings.ToLower(strings.TrimSpace(r.FormValue("email"))),
		Phone:    strings.TrimSpace(r.FormValue("phone")),
		Company:  strings.TrimSpace(r.FormValue("company")),
		Password: r.FormValue("password"),
	}
	if err := h.validate.Struct(&form); err != nil {
		writeFieldErrors(h.render, w, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	existing, err := h.repo.GetByEmail(r.Context(), form.Email)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if existing != nil {
		writeError(h.render, w, helpers.NewConflictError("Distributor with this email already exists"))
		return
	}

	hashed := helpers.HashPassword(form.Password)
	if hashed == "" {
		writeError(h.render, w, helpers.NewValidationError("Failed to hash password", nil))
		return
	}

	distributor := &models.Distributor{
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Company:  form.Company,
		Password: hashed,
		IsActive: true,
	}
	if err := h.repo.Create(r.Context(), distributor); err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusCreated, distributor)
}

func (h *DistributorHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := parseAnyForm(r); err != nil {
		writeFieldErrors(h.render, w, []helpers.FieldError{{Path: "body", Message: "Failed to parse form payload."}})
		return
	}

	email := strings.ToLower(strings.TrimSpace(r.FormValue("email")))
	password := r.FormValue("password")
	if email == "" || password == "" {
		writeFieldErrors(h.render, w, []helpers.FieldError{{Path: "email", Message: "Email and password are required."}})
		return
	}

	distributor, err := h.repo.GetByEmail(r.Context(), email)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if distributor == nil || !helpers.PasswordCompare(distributor.Password, []byte(password)) {
		writeError(h.render, w, helpers.NewAuthError("Invalid credentials"))
		return
	}
	if !distributor.IsActive {
		writeError(h.render, w, helpers.NewForbiddenError("Account is deactivated"))
		return
	}

	if err := h.sessionStore.SetDistributorID(w, r, distributor.ID); err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusOK, distributor)
}

func (h *DistributorHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearDistributorID(w, r); err != nil {
		writeError(h.render, w, err)
		return
	}
	writeMessage(h.render, w, http.StatusOK, "Logged out")
}

func (h *DistributorHandler) List(w http.ResponseWriter, r *http.Request) {
	distributors, err := h.repo.GetAll(r.Context())
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusOK, distributors)
}

func (h *DistributorHandler) Update(w http.ResponseWriter, r *http.Request) {
	distributor, err := h.repo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if distributor == nil {
		writeError(h.render, w, helpers.NewNotFoundError("Distributor not found"))
		return
	}

	if err := parseAnyForm(r); err != nil {
		writeFieldErrors(h.render, w, []helpers.FieldError{{Path: "body", Message: "Failed to parse form payload."}})
		return
	}

	if v, ok := formValue(r, "name"); ok {
		distributor.Name = strings.TrimSpace(v)
	}
	if v, ok := formValue(r, "phone"); ok {
		distributor.Phone = strings.TrimSpace(v)
	}
	if v, ok := formValue(r, "company"); ok {
		distributor.Company = strings.TrimSpace(v)
	}
	if v, ok := formValue(r, "email"); ok {
		email := strings.ToLower(strings.TrimSpace(v))
		if email != distributor.Email {
			existing, err := h.repo.GetByEmail(r.Context(), email)
			if err != nil {
				writeError(h.render, w, err)
				return
			}
			if existing != nil && existing.ID != distributor.ID {
				writeError(h.render, w, helpers.NewConflictError("Distributor with this email already exists"))
				return
			}
			distributor.Email = email
		}
	}

	check := distributorForm{
		Name:     distributor.Name,
		Email:    distributor.Email,
		Phone:    distributor.Phone,
		Company:  distributor.Company,
		Password: "placeholder",
	}
	if err := h.validate.Struct(&check); err != nil {
		writeFieldErrors(h.render, w, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	if err := h.repo.Update(r.Context(), distributor); err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusOK, distributor)
}

func (h *DistributorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	distributor, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if distributor == nil {
		writeError(h.render, w, helpers.NewNotFoundError("Distributor not found"))
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		writeError(h.render, w, err)
		return
	}
	writeMessage(h.render, w, http.StatusOK, "Distributor deleted")
}

func (h *DistributorHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	distributor, err := h.repo.ToggleActive(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if distributor == nil {
		writeError(h.render, w, helpers.NewNotFoundError("Distributor not found"))
		return
	}
	writeData(h.render, w, http.StatusOK, distributor)
}
