package helpers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hashed := HashPassword("s3cret-pass")
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "s3cret-pass", hashed)

	assert.True(t, PasswordCompare(hashed, []byte("s3cret-pass")))
	assert.False(t, PasswordCompare(hashed, []byte("wrong")))
}

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "rose-gold-solitaire-ring", GenerateSlug("Rose Gold Solitaire Ring"))
	assert.Equal(t, "18k-gold-hoops", GenerateSlug("18k Gold & Hoops"))
}

func TestFormatValidationErrors(t *testing.T) {
	type form struct {
		Title string `validate:"required"`
		Email string `validate:"required,email"`
	}

	err := validator.New().Struct(&form{Email: "not-an-email"})
	require.Error(t, err)

	fields := FormatValidationErrors(err.(validator.ValidationErrors))
	require.Len(t, fields, 2)
	assert.Equal(t, "title", fields[0].Path)
	assert.Equal(t, "Title is required.", fields[0].Message)
	assert.Equal(t, "email", fields[1].Path)
	assert.Equal(t, "Email must be a valid email address.", fields[1].Message)
}

func TestAppErrorWrapping(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("loading category: %w", NewNotFoundError("Category not found"))

	appErr, ok := AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, appErr.Kind)
	assert.Equal(t, "Category not found", appErr.Message)

	_, ok = AsAppError(cause)
	assert.False(t, ok)
}

func TestJoinFieldErrors(t *testing.T) {
	joined := JoinFieldErrors([]FieldError{
		{Path: "title", Message: "Title is required."},
		{Path: "link", Message: "Link is required."},
	})
	assert.Equal(t, "Title is required.; Link is required.", joined)
}
