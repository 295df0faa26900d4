package errors

import (
	"errors"
	"fmt"
	"net/http"

	"auth-graph/app/domain"
	"auth-graph/app/utils/validator"
)

// ErrorCode represents specific error types
type ErrorCode string

const (
	// Authentication errors
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// User management errors
	ErrCodeUserNotFound ErrorCode = "USER_NOT_FOUND"
	ErrCodeEmailTaken   ErrorCode = "EMAIL_TAKEN"

	// Validation errors
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidInput     ErrorCode = "INVALID_INPUT"

	// System errors
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"
	ErrCodeDatabaseError ErrorCode = "DATABASE_ERROR"
	ErrCodeBadRequest    ErrorCode = "BAD_REQUEST"
)

// AppError represents an application error with additional context
type AppError struct {
	Code       ErrorCode         `json:"code"`
	Message    string            `json:"message"`
	Fields     map[string]string `json:"fields,omitempty"`
	StatusCode int               `json:"-"`
	Cause      error             `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause adds a cause to the error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
	}
}

// Wrap wraps an existing error with AppError
func Wrap(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
		Cause:      cause,
	}
}

// AsAppError converts an error to AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// FromDomain maps domain and validation errors onto AppError values with
// the messages the public API promises. Unknown errors become an internal
// error so no storage or library detail leaks outward.
func FromDomain(err error) *AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		appErr := New(ErrCodeValidationFailed, valErr.Error())
		appErr.Fields = valErr.Errors
		return appErr
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return New(ErrCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, domain.ErrEmailTaken):
		return New(ErrCodeEmailTaken, "Email already in use")
	case errors.Is(err, domain.ErrUserNotFound):
		return New(ErrCodeUserNotFound, "user not found")
	case errors.Is(err, domain.ErrInvalidInput):
		return New(ErrCodeInvalidInput, "invalid input")
	default:
		return Wrap(ErrCodeInternalError, "internal server error", err)
	}
}

// getHTTPStatusCode maps error codes to HTTP status codes
func getHTTPStatusCode(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidCredentials, ErrCodeTokenExpired, ErrCodeInvalidToken:
		return http.StatusUnauthorized
	case ErrCodeUserNotFound:
		return http.StatusNotFound
	case ErrCodeEmailTaken:
		return http.StatusConflict
	case ErrCodeValidationFailed, ErrCodeInvalidInput, ErrCodeBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
