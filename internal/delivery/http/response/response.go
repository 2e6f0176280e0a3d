// Package response renders the service's wire formats: success bodies are the
// DTOs themselves, error bodies are the structured {error_message, error_code}
// shape. Stack traces and causes never reach the client.
package response

import (
	"net/http"

	domainerrors "gatekeeper/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Error writes the structured error body with the given status.
func Error(c echo.Context, statusCode int, errorCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.ErrorBody{
		ErrorMessage: message,
		ErrorCode:    errorCode,
	})
}

// AppError renders an application error using its own status, code and message.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())
}

// Unauthorized writes a 401 with the token-invalid error code.
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, domainerrors.CodeTokenInvalid, message)
}

// UnprocessableEntity writes a 422 for binding/validation failures.
func UnprocessableEntity(c echo.Context, message string) error {
	return Error(c, http.StatusUnprocessableEntity, domainerrors.CodeInvalidPayload, message)
}
