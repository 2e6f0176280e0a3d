package usecase

import (
	"context"

	"gatekeeper/internal/domain/entity"
)

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UserUsecase defines the account operations behind the access guard.
// Subjects come from verified tokens; each operation does its own lookup so a
// stale token referencing a deleted account is a distinct, handled outcome.
type UserUsecase interface {
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	// GetBySubject loads the account a verified token subject refers to.
	GetBySubject(ctx context.Context, subject string) (*entity.User, error)

	// DeleteBySubject removes the account a verified token subject refers to.
	DeleteBySubject(ctx context.Context, subject string) error
}
