package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"gatekeeper/internal/delivery/http/response"
	domainerrors "gatekeeper/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware centralizes error rendering as Echo's HTTPErrorHandler.
// Typed application errors carry their own status and code; anything else is
// a 500 with a generic body, logged with its full cause chain.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Typed application errors: render status, code and message as-is.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if details := appErr.Details(); details != "" {
			m.logger.Warn("Request failed",
				slog.String("path", c.Request().URL.Path),
				slog.Int("errorCode", appErr.ErrorCode()),
				slog.String("details", details),
			)
		}
		_ = response.AppError(c, appErr)

		return
	}

	// Echo's own errors (unknown route, method not allowed, body too large).
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.Error(c, httpErr.Code, 0, fmt.Sprint(httpErr.Message))

		return
	}

	// Everything else is a server fault; the cause stays in the logs.
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError,
		domainerrors.CodeInternal, "Internal server error")
}
