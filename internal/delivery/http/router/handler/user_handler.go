package handler

import (
	"net/http"
	"time"

	"gatekeeper/internal/delivery/http/middleware"
	"gatekeeper/internal/delivery/http/response"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserResponse is the public shape of an account. The password hash has no
// field here; it cannot leak by construction.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create handles POST /user/: public registration.
func (h *UserHandler) Create(c echo.Context) error {
	input := new(usecase.RegisterUserInput)
	if err := c.Bind(input); err != nil {
		return response.UnprocessableEntity(c, "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Get handles GET /user/: returns the account of the verified token subject.
// A verified subject with no matching account is 404, not 401: the token was
// valid, the account is gone.
func (h *UserHandler) Get(c echo.Context) error {
	subject, ok := middleware.SubjectFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid or expired token")
	}

	user, err := h.uc.GetBySubject(c.Request().Context(), subject)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete handles DELETE /user/: removes the verified token subject's account.
// A stale subject (account already deleted) renders as unauthorized here,
// unlike Get; a delete caller holding such a token has nothing to act on.
func (h *UserHandler) Delete(c echo.Context) error {
	subject, ok := middleware.SubjectFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid or expired token")
	}

	if err := h.uc.DeleteBySubject(c.Request().Context(), subject); err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "User deleted successfully."})
}
