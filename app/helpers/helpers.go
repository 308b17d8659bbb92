package helpers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const (
	ContextKeyAdminID       contextKey = "adminID"
	ContextKeyAdmin         contextKey = "adminObject"
	ContextKeyDistributorID contextKey = "distributorID"
)

func FormatValidationErrors(errs validator.ValidationErrors) []FieldError {
	fieldErrors := make([]FieldError, 0, len(errs))
	for _, err := range errs {
		field := strings.ToLower(err.Field()[:1]) + err.Field()[1:]
		var message string
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required.", err.Field())
		case "email":
			message = fmt.Sprintf("%s must be a valid email address.", err.Field())
		case "numeric":
			message = fmt.Sprintf("%s must be numeric.", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters/value.", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters/value.", err.Field(), err.Param())
		case "url":
			message = fmt.Sprintf("%s must be a valid URL.", err.Field())
		default:
			message = fmt.Sprintf("%s failed validation on %s.", err.Field(), err.Tag())
		}
		fieldErrors = append(fieldErrors, FieldError{Path: field, Message: message})
	}
	return fieldErrors
}

func PasswordCompare(hashPass string, password []byte) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashPass), password)
	if err != nil {
		return false
	}
	return true
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Errorf("Error hashing password: %v", err)
		return ""
	}
	return string(bytes)
}

func GenerateSlug(s string) string {
	return slug.Make(s)
}
