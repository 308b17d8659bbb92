package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/aureliajewels/jewelry-cms/app/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdminRepo struct {
	admins map[string]*models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*models.Admin)}
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *models.Admin, roleNames []string) error {
	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}
	for _, name := range roleNames {
		admin.Roles = append(admin.Roles, models.Role{ID: uuid.New().String(), Name: name})
	}
	stored := *admin
	f.admins[admin.ID] = &stored
	return nil
}

func (f *fakeAdminRepo) GetByID(_ context.Context, id string) (*models.Admin, error) {
	admin, ok := f.admins[id]
	if !ok {
		return nil, nil
	}
	copied := *admin
	return &copied, nil
}

func (f *fakeAdminRepo) GetByEmailOrUsername(_ context.Context, email, username string) (*models.Admin, error) {
	for _, admin := range f.admins {
		if admin.Email == email || admin.Username == username {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminRepo) GetByLogin(ctx context.Context, login string) (*models.Admin, error) {
	return f.GetByEmailOrUsername(ctx, login, login)
}

func (f *fakeAdminRepo) GetAll(_ context.Context) ([]models.Admin, error) {
	out := make([]models.Admin, 0, len(f.admins))
	for _, admin := range f.admins {
		out = append(out, *admin)
	}
	return out, nil
}

func (f *fakeAdminRepo) Update(_ context.Context, admin *models.Admin, _ []string) error {
	stored := *admin
	f.admins[admin.ID] = &stored
	return nil
}

func (f *fakeAdminRepo) Delete(_ context.Context, id string) error {
	delete(f.admins, id)
	return nil
}

func (f *fakeAdminRepo) ToggleActive(_ context.Context, id string) (*models.Admin, error) {
	admin, ok := f.admins[id]
	if !ok {
		return nil, nil
	}
	admin.IsActive = !admin.IsActive
	copied := *admin
	return &copied, nil
}

func postForm(t *testing.T, handler http.HandlerFunc, values url.Values) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler(rec, req)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func adminFormValues(email, username string) url.Values {
	return url.Values{
		"name":     {"Jordan"},
		"email":    {email},
		"username": {username},
		"password": {"longenoughpass"},
	}
}

func TestCreateAdmin(t *testing.T) {
	h := NewAdminAccountHandler(newFakeAdminRepo(), NewRender())

	rec, envelope := postForm(t, h.Create, adminFormValues("jordan@example.com", "jordan"))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, envelope.Success)
}

func TestCreateAdminDuplicateEmail(t *testing.T) {
	repo := newFakeAdminRepo()
	h := NewAdminAccountHandler(repo, NewRender())

	rec, _ := postForm(t, h.Create, adminFormValues("jordan@example.com", "jordan"))
	require.Equal(t, http.StatusCreated, rec.Code)

	// Same email, different username.
	rec, envelope := postForm(t, h.Create, adminFormValues("jordan@example.com", "other"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Admin with this email or username already exists", envelope.Message)
}

func TestCreateAdminDuplicateUsername(t *testing.T) {
	repo := newFakeAdminRepo()
	h := NewAdminAccountHandler(repo, NewRender())

	rec, _ := postForm(t, h.Create, adminFormValues("jordan@example.com", "jordan"))
	require.Equal(t, http.StatusCreated, rec.Code)

	// Different email, same username.
	rec, envelope := postForm(t, h.Create, adminFormValues("other@example.com", "jordan"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Admin with this email or username already exists", envelope.Message)
}

func TestCreateAdminValidation(t *testing.T) {
	h := NewAdminAccountHandler(newFakeAdminRepo(), NewRender())

	rec, envelope := postForm(t, h.Create, url.Values{
		"name":     {"Jordan"},
		"email":    {"not-an-email"},
		"username": {"jordan"},
		"password": {"short"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, envelope.Success)
	assert.NotEmpty(t, envelope.Errors)
}

func TestUpdateAdminRejectsShortPassword(t *testing.T) {
	repo := newFakeAdminRepo()
	h := NewAdminAccountHandler(repo, NewRender())

	rec, _ := postForm(t, h.Create, adminFormValues("jordan@example.com", "jordan"))
	require.Equal(t, http.StatusCreated, rec.Code)

	admins, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, admins, 1)

	body := url.Values{"password": {"short"}}
	req := httptest.NewRequest(http.MethodPut, "/api/admins/"+admins[0].ID, strings.NewReader(body.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = mux.SetURLVars(req, map[string]string{"id": admins[0].ID})
	rec = httptest.NewRecorder()
	h.Update(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Errors, 1)
	assert.Equal(t, "password", envelope.Errors[0].Path)
	assert.Equal(t, "Password must be at least 8 characters.", envelope.Errors[0].Message)
}

func TestCreateAdminDefaultsToEditorRole(t *testing.T) {
	repo := newFakeAdminRepo()
	h := NewAdminAccountHandler(repo, NewRender())

	rec, _ := postForm(t, h.Create, adminFormValues("jordan@example.com", "jordan"))
	require.Equal(t, http.StatusCreated, rec.Code)

	admins, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, admins, 1)
	require.Len(t, admins[0].Roles, 1)
	assert.Equal(t, models.RoleEditor, admins[0].Roles[0].Name)
}
