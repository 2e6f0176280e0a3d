// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"gatekeeper/internal/delivery/http/middleware"
	"gatekeeper/internal/delivery/http/response"
	"gatekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HeaderXUserID carries the verified subject back to the caller of /auth/verify.
const HeaderXUserID = "X-User-Id"

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Token handles POST /auth/token: it exchanges an email/password credential
// for a signed bearer token.
func (h *AuthHandler) Token(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return response.UnprocessableEntity(c, "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// Verify handles GET /auth/verify. It runs behind the access guard, so
// reaching it means the token already passed signature and expiry checks;
// the verified subject is echoed in the X-User-Id response header.
func (h *AuthHandler) Verify(c echo.Context) error {
	subject, ok := middleware.SubjectFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid or expired token")
	}

	c.Response().Header().Set(HeaderXUserID, subject)

	return c.JSON(http.StatusOK, map[string]string{"message": "Token is valid."})
}
