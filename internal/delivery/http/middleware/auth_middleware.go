package middleware

import (
	"log/slog"
	"strings"

	"gatekeeper/internal/delivery/http/response"
	"gatekeeper/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// keyUserSubject is the echo.Context key carrying the verified token subject.
const keyUserSubject = "userSubject"

// AuthMiddleware is the access guard: it extracts the bearer token, asks the
// token service to verify it and hands the verified subject to downstream
// handlers. It performs no repository lookup; handlers resolve the subject
// themselves and treat a missing account as a distinct outcome.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer token on the request. Every failure mode
// (missing header, expired, malformed, missing subject) maps to 401 with the
// token-invalid code; the discriminated cause is only logged.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Decode(tokenString)
		if err != nil {
			m.logger.Warn("Token verification failed",
				slog.String("path", c.Request().URL.Path),
				slog.Any("error", err))

			return response.Unauthorized(c, "Invalid or expired token")
		}

		if claims.Subject == "" {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		c.Set(keyUserSubject, claims.Subject)

		return next(c)
	}
}

// SubjectFromContext returns the verified subject stored by Authenticate.
func SubjectFromContext(c echo.Context) (string, bool) {
	subject, ok := c.Get(keyUserSubject).(string)

	return subject, ok && subject != ""
}
