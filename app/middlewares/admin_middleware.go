package middlewares

import (
	"context"
	"net/http"

	"github.com/aureliajewels/jewelry-cms/app/helpers"
	"github.com/aureliajewels/jewelry-cms/app/repositories"
	"github.com/aureliajewels/jewelry-cms/app/utils/sessions"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

// AdminAuthMiddleware guards the dashboard API: 401 without a valid session,
// 403 for deactivated accounts. The loaded admin is placed in the request
// context for handlers.
func AdminAuthMiddleware(adminRepo repositories.AdminRepositoryImpl, sessionStore sessions.SessionStore, rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			adminID := sessionStore.GetAdminID(r)
			if adminID == "" {
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]interface{}{
					"success": false,
					"message": "Authentication required",
				})
				return
			}

			admin, err := adminRepo.GetByID(r.Context(), adminID)
			if err != nil {
				logrus.Errorf("AdminAuthMiddleware: failed to load admin %s: %v", adminID, err)
				_ = rnd.JSON(w, http.StatusInternalServerError, map[string]interface{}{
					"success": false,
					"message": "Internal server error",
				})
				return
			}
			if admin == nil {
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]interface{}{
					"success": false,
					"message": "Invalid session",
				})
				return
			}
			if !admin.IsActive {
				_ = rnd.JSON(w, http.StatusForbidden, map[string]interface{}{
					"success": false,
					"message": "Account is deactivated",
				})
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyAdminID, admin.ID)
			ctx = context.WithValue(ctx, helpers.ContextKeyAdmin, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
