package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aureliajewels/jewelry-cms/app/helpers"
	"github.com/aureliajewels/jewelry-cms/app/models"
	"github.com/aureliajewels/jewelry-cms/app/repositories"
	"github.com/aureliajewels/jewelry-cms/app/services"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

type SubscriptionHandler struct {
	repo   repositories.SubscriptionRepositoryImpl
	export *services.ExportService
	mailer *services.Mailer
	render *render.Render
}

func NewSubscriptionHandler(repo repositories.SubscriptionRepositoryImpl, export *services.ExportService, mailer *services.Mailer, rnd *render.Render) *SubscriptionHandler {
	return &SubscriptionHandler{
		repo:   repo,
		export: export,
		mailer: mailer,
		render: rnd,
	}
}

// Subscribe is the public storefront endpoint. A welcome mail is sent
// best-effort; mail failure never fails the subscription.
func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeFieldErrors(h.render, w, []helpers.FieldError{{Path: "body", Message: "Invalid JSON payload."}})
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if email == "" || !strings.Contains(email, "@") {
		writeFieldErrors(h.render, w, []helpers.FieldError{{Path: "email", Message: "Email must be a valid email address."}})
		return
	}

	existing, err := h.repo.GetByEmail(r.Context(), email)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if existing != nil {
		writeError(h.render, w, helpers.NewConflictError("This email is already subscribed"))
		return
	}

	subscription := &models.EmailSubscription{Email: email, IsActive: true}
	if err := h.repo.Create(r.Context(), subscription); err != nil {
		writeError(h.render, w, err)
		return
	}

	if h.mailer != nil {
		go func(to string) {
			if err := h.mailer.SendHTMLEmail(to, "Welcome to Aurelia Jewels", services.BuildWelcomeEmailBody(to)); err != nil {
				logrus.Warnf("Welcome mail to %s failed: %v", to, err)
			}
		}(email)
	}

	writeData(h.render, w, http.StatusCreated, subscription)
}

func (h *SubscriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit, search := parsePageParams(r)

	subscriptions, total, err := h.repo.GetPage(r.Context(), page, limit, search)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writePage(h.render, w, subscriptions, NewPagination(page, limit, total))
}

func (h *SubscriptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	subscription, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if subscription == nil {
		writeError(h.render, w, helpers.NewNotFoundError("Subscription not found"))
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		writeError(h.render, w, err)
		return
	}
	writeMessage(h.render, w, http.StatusOK, "Subscription deleted")
}

func (h *SubscriptionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	subscription, err := h.repo.ToggleActive(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if subscription == nil {
		writeError(h.render, w, helpers.NewNotFoundError("Subscription not found"))
		return
	}
	writeData(h.render, w, http.StatusOK, subscription)
}

// Export streams the current filtered list as csv, xlsx or pdf.
func (h *SubscriptionHandler) Export(w http.ResponseWriter, r *http.Request) {
	format := services.ExportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = services.FormatCSV
	}

	contentType, extension, err := h.export.ContentType(format)
	if err != nil {
		writeFieldErrors(h.render, w, []helpers.FieldError{{Path: "format", Message: "Format must be csv, xlsx or pdf."}})
		return
	}

	subscriptions, err := h.repo.GetFiltered(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(h.render, w, err)
		return
	}

	filename := fmt.Sprintf("subscriptions-%s.%s", time.Now().Format("20060102-150405"), extension)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.export.WriteSubscriptions(w, format, subscriptions); err != nil {
		logrus.Errorf("Subscription export failed: %v", err)
	}
}
