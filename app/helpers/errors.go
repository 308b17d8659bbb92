package helpers

import (
	"errors"
	"fmt"
)

// FieldError is a single path/message pair surfaced to the client inside the
// response envelope.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindNotFound
	KindConflict
	KindAuth
	KindForbidden
	KindInternal
)

// AppError is the expected-failure type services return. Handlers map its
// kind to a status code; anything that is not an AppError is a 500.
type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewValidationError(message string, fields []FieldError) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Fields: fields}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func NewAuthError(message string) *AppError {
	return &AppError{Kind: KindAuth, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// JoinFieldErrors flattens field errors into one human-readable message for
// callers that only display a single line.
func JoinFieldErrors(fields []FieldError) string {
	msg := ""
	for i, f := range fields {
		if i > 0 {
			msg += "; "
		}
		msg += f.Message
	}
	return msg
}
