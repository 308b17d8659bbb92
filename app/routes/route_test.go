package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aureliajewels/jewelry-cms/app/configs"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessionStore struct{}

func (stubSessionStore) GetAdminID(*http.Request) string { return "" }
func (stubSessionStore) SetAdminID(http.ResponseWriter, *http.Request, string) error {
	return nil
}
func (stubSessionStore) ClearAdminID(http.ResponseWriter, *http.Request) error { return nil }
func (stubSessionStore) GetDistributorID(*http.Request) string                 { return "" }
func (stubSessionStore) SetDistributorID(http.ResponseWriter, *http.Request, string) error {
	return nil
}
func (stubSessionStore) ClearDistributorID(http.ResponseWriter, *http.Request) error { return nil }
func (stubSessionStore) ClearSession(http.ResponseWriter, *http.Request) error       { return nil }

func testRouter(t *testing.T) *mux.Router {
	t.Helper()
	env := configs.ENV{UploadDir: t.TempDir(), UploadBaseURL: "/uploads"}
	return newRouter(nil, env, stubSessionStore{})
}

// Every documented path must resolve at /api/<resource>, mutations included.
func TestRouterResolvesResourceTable(t *testing.T) {
	router := testRouter(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/csrf"},
		{http.MethodPost, "/api/auth/login"},
		{http.MethodPost, "/api/auth/logout"},
		{http.MethodGet, "/api/auth/me"},

		{http.MethodGet, "/api/categories"},
		{http.MethodPost, "/api/categories"},
		{http.MethodPost, "/api/categories/with-subcategories"},
		{http.MethodGet, "/api/categories/abc"},
		{http.MethodPut, "/api/categories/abc"},
		{http.MethodDelete, "/api/categories/abc"},
		{http.MethodPatch, "/api/categories/abc/toggle"},
		{http.MethodPost, "/api/categories/abc/subcategories"},
		{http.MethodPut, "/api/subcategories/abc"},
		{http.MethodDelete, "/api/subcategories/abc"},
		{http.MethodPatch, "/api/subcategories/abc/toggle"},

		{http.MethodGet, "/api/content/banners"},
		{http.MethodGet, "/api/banners"},
		{http.MethodPost, "/api/banners"},
		{http.MethodPut, "/api/banners/abc"},
		{http.MethodDelete, "/api/banners/abc"},
		{http.MethodPatch, "/api/banners/abc/toggle"},
		{http.MethodPost, "/api/hero-sections"},
		{http.MethodPost, "/api/services"},
		{http.MethodPost, "/api/testimonials"},
		{http.MethodPost, "/api/videos"},

		{http.MethodGet, "/api/reviews"},
		{http.MethodPost, "/api/reviews"},
		{http.MethodPut, "/api/reviews/abc"},
		{http.MethodDelete, "/api/reviews/abc"},
		{http.MethodPatch, "/api/reviews/abc/toggle"},

		{http.MethodPost, "/api/newsletter"},
		{http.MethodGet, "/api/newsletter/subscriptions"},
		{http.MethodGet, "/api/newsletter/subscriptions/export"},
		{http.MethodDelete, "/api/newsletter/subscriptions/abc"},
		{http.MethodPatch, "/api/newsletter/subscriptions/abc/toggle"},

		{http.MethodGet, "/api/admins"},
		{http.MethodPost, "/api/admins"},
		{http.MethodPut, "/api/admins/abc"},
		{http.MethodDelete, "/api/admins/abc"},
		{http.MethodPatch, "/api/admins/abc/toggle"},

		{http.MethodPost, "/api/distributors/register"},
		{http.MethodPost, "/api/distributors/login"},
		{http.MethodPost, "/api/distributors/logout"},
		{http.MethodGet, "/api/distributors"},
		{http.MethodPut, "/api/distributors/abc"},
		{http.MethodDelete, "/api/distributors/abc"},
		{http.MethodPatch, "/api/distributors/abc/toggle"},

		{http.MethodGet, "/api/products"},
		{http.MethodGet, "/api/products/gold-ring"},
		{http.MethodPost, "/api/products"},
		{http.MethodPut, "/api/products/abc"},
		{http.MethodDelete, "/api/products/abc"},
		{http.MethodPatch, "/api/products/abc/toggle"},
		{http.MethodGet, "/api/admin/products"},
		{http.MethodGet, "/api/admin/products/abc"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		var match mux.RouteMatch
		assert.True(t, router.Match(req, &match), "%s %s not routed", tc.method, tc.path)
		assert.NoError(t, match.MatchErr, "%s %s", tc.method, tc.path)
	}
}

// Mutations are session-guarded: without a session cookie they must come back
// 401, not execute.
func TestRouterGuardsMutations(t *testing.T) {
	router := testRouter(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/categories"},
		{http.MethodPost, "/api/categories/with-subcategories"},
		{http.MethodPut, "/api/categories/abc"},
		{http.MethodDelete, "/api/categories/abc"},
		{http.MethodPatch, "/api/categories/abc/toggle"},
		{http.MethodPost, "/api/banners"},
		{http.MethodPut, "/api/banners/abc"},
		{http.MethodPost, "/api/reviews"},
		{http.MethodGet, "/api/newsletter/subscriptions/export"},
		{http.MethodPost, "/api/admins"},
		{http.MethodPost, "/api/products"},
		{http.MethodGet, "/api/auth/me"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}

// The storefront review listing stays public when scoped by productId.
func TestRouterReviewListSplit(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/reviews?productId=p1", nil)
	var match mux.RouteMatch
	require.True(t, router.Match(req, &match))
	require.NoError(t, match.MatchErr)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reviews", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
