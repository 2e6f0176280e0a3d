// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	domainerrors "gatekeeper/internal/domain/errors"
)

type requestValidator struct {
	validate *playground.Validate
}

// New builds the Echo validator used for all bound request DTOs.
func New() echo.Validator {
	return &requestValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate runs struct tag validation. Failures surface as the invalid-payload
// application error; the per-field detail stays in Details for logging.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrInvalidPayload.WithDetails(err.Error())
	}

	return nil
}
