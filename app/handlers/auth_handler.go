package handlers

import (
	"net/http"
	"strings"

	"github.com/aureliajewels/jewelry-cms/app/helpers"
	"github.com/aureliajewels/jewelry-cms/app/models"
	"github.com/aureliajewels/jewelry-cms/app/repositories"
	"github.com/aureliajewels/jewelry-cms/app/utils/sessions"
	"github.com/gorilla/csrf"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	repo         repositories.AdminRepositoryImpl
	sessionStore sessions.SessionStore
	render       *render.Render
}

func NewAuthHandler(repo repositories.AdminRepositoryImpl, sessionStore sessions.SessionStore, rnd *render.Render) *AuthHandler {
	return &AuthHandler{
		repo:         repo,
		sessionStore: sessionStore,
		render:       rnd,
	}
}

// Login accepts either email or username. A wrong login and a wrong password
// get the same message so the endpoint leaks nothing about which one failed.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := parseAnyForm(r); err != nil {
		writeFieldErrors(h.render, w, []helpers.FieldError{{Path: "body", Message: "Failed to parse form payload."}})
		return
	}

	login := strings.TrimSpace(r.FormValue("login"))
	password := r.FormValue("password")
	if login == "" || password == "" {
		writeFieldErrors(h.render, w, []helpers.FieldError{{Path: "login", Message: "Login and password are required."}})
		return
	}

	admin, err := h.repo.GetByLogin(r.Context(), login)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if admin == nil || !helpers.PasswordCompare(admin.Password, []byte(password)) {
		writeError(h.render, w, helpers.NewAuthError("Invalid credentials"))
		return
	}
	if !admin.IsActive {
		writeError(h.render, w, helpers.NewForbiddenError("Account is deactivated"))
		return
	}

	if err := h.sessionStore.SetAdminID(w, r, admin.ID); err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusOK, admin)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		writeError(h.render, w, err)
		return
	}
	writeMessage(h.render, w, http.StatusOK, "Logged out")
}

// Me returns the authenticated admin placed in the context by the auth
// middleware.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	admin, ok := r.Context().Value(helpers.ContextKeyAdmin).(*models.Admin)
	if !ok || admin == nil {
		writeError(h.render, w, helpers.NewAuthError("Not authenticated"))
		return
	}
	writeData(h.render, w, http.StatusOK, admin)
}

// CSRFToken hands the SPA a token for subsequent mutating requests.
func (h *AuthHandler) CSRFToken(w http.ResponseWriter, r *http.Request) {
	writeData(h.render, w, http.StatusOK, map[string]string{
		"csrfToken": csrf.Token(r),
	})
}
