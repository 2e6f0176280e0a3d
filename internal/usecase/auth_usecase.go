// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput returns the issued credential after a successful login.
type LoginOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthUsecase is the credential gate: it checks a password credential against
// the stored record and issues a signed token on success.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	// Login verifies the email/password pair and returns a bearer token whose
	// subject is the user's ID. All credential failures surface as the same
	// generic forbidden error; only the machine-readable code differs.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
