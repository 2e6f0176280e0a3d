package errors

import (
	"net/http"

	"gatekeeper/internal/errors"
)

// Machine-readable error codes surfaced in the error_code field.
// The three credential codes share one HTTP status and one generic message so
// responses never reveal whether an email is registered; the code is the
// observability channel that tells the failure points apart.
const (
	CodeUnknownEmail          = 1
	CodeWrongPassword         = 2
	CodeCredentialCheckFailed = 3
	CodeEmailExists           = 4
	CodeUsernameExists        = 5
	CodeTokenInvalid          = 6
	CodeUserNotFound          = 7
	CodeInvalidPayload        = 8
	CodeInternal              = 9
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() int    // Machine-readable business error code
	Message() string   // User-facing error message
	Details() string   // Detailed error information (optional, for logs)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode int
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode, errorCode int, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() int {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed diagnostics.
// Details are for logging; the rendered body only carries message and code.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Credential errors: identical status and message, distinct codes.
	ErrUnknownEmail = NewBaseError(
		http.StatusForbidden,
		CodeUnknownEmail,
		"Invalid email or password",
		"",
	)

	ErrWrongPassword = NewBaseError(
		http.StatusForbidden,
		CodeWrongPassword,
		"Invalid email or password",
		"",
	)

	ErrCredentialCheckFailed = NewBaseError(
		http.StatusForbidden,
		CodeCredentialCheckFailed,
		"Invalid email or password",
		"",
	)

	// Registration errors: duplicate fields get distinct codes.
	ErrEmailExists = NewBaseError(
		http.StatusBadRequest,
		CodeEmailExists,
		"Email already registered",
		"",
	)

	ErrUsernameExists = NewBaseError(
		http.StatusBadRequest,
		CodeUsernameExists,
		"Username already registered",
		"",
	)

	// Token errors: expired, malformed and missing-subject all render the same.
	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		CodeTokenInvalid,
		"Invalid or expired token",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		CodeUserNotFound,
		"User not found",
		"",
	)

	ErrInvalidPayload = NewBaseError(
		http.StatusUnprocessableEntity,
		CodeInvalidPayload,
		"Invalid request payload",
		"",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		CodeInternal,
		"Internal server error",
		"",
	)
)
