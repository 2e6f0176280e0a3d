package impl

import (
	"context"
	"log/slog"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. The email pre-check is only a fast path;
// the unique constraints enforced by the repository are the source of truth,
// so a lost race still surfaces as the right duplicate error.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
		srv.log(ctx).Warn("Registration rejected: email taken", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrEmailExists, "registration failed")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing email")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: passwordHash,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, errors.Wrap(domainerrors.ErrEmailExists, "registration failed")
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, errors.Wrap(domainerrors.ErrUsernameExists, "registration failed")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return newUser, nil
}

// GetBySubject loads the account a verified token subject refers to.
// A subject with no matching row means the token outlived its account.
func (srv *userService) GetBySubject(ctx context.Context, subject string) (*entity.User, error) {
	userID, err := parseSubject(subject)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Verified subject has no account", slog.String("subject", subject))

			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "subject lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// DeleteBySubject removes the account a verified token subject refers to.
func (srv *userService) DeleteBySubject(ctx context.Context, subject string) error {
	userID, err := parseSubject(subject)
	if err != nil {
		return err
	}

	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Delete for stale subject", slog.String("subject", subject))

			return errors.Wrap(domainerrors.ErrUserNotFound, "subject delete failed")
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", userID))

	return nil
}

// parseSubject converts a token subject into a user ID. The subject comes from
// a signature-verified token, so a malformed one still maps to unauthorized.
func parseSubject(subject string) (uuid.UUID, error) {
	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token subject is not a user id")
	}

	return userID, nil
}
