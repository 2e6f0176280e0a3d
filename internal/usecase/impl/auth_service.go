// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "gatekeeper/internal/delivery/context"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const tokenTypeBearer = "bearer"

// authService implements the AuthUsecase interface. It is the only component
// that sees both the stored password hash and the token issuer; the hash never
// travels past it.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the credential in strict order: lookup, password check, token
// issue. Unknown email, wrong password and hash corruption all collapse into
// the same generic forbidden response so login cannot be used to enumerate
// accounts; the error code (1/2/3) tells them apart in logs and bodies.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed: unknown email",
				slog.String("email", input.Email),
				slog.Int("errorCode", domainerrors.CodeUnknownEmail))

			return nil, errors.Wrap(domainerrors.ErrUnknownEmail, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	ok, checkErr := srv.hasher.Check(input.Password, user.PasswordHash)
	if checkErr != nil {
		// Corrupted or foreign hash format. The cause is logged, never exposed.
		srv.log(ctx).Error("Login failed: stored hash unreadable",
			slog.String("email", input.Email),
			slog.Int("errorCode", domainerrors.CodeCredentialCheckFailed),
			slog.Any("error", checkErr))

		return nil, errors.Wrap(domainerrors.ErrCredentialCheckFailed, "login failed")
	}
	if !ok {
		srv.log(ctx).Warn("Login failed: wrong password",
			slog.String("email", input.Email),
			slog.Int("errorCode", domainerrors.CodeWrongPassword))

		return nil, errors.Wrap(domainerrors.ErrWrongPassword, "login failed")
	}

	accessToken, err := srv.tokenService.Encode(user.ID.String(), nil)
	if err != nil {
		srv.log(ctx).Error("Login failed: token issue",
			slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to encode access token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   tokenTypeBearer,
	}, nil
}
