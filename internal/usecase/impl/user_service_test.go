package impl

import (
	"context"
	"testing"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *fakeUserRepo
	hasher   *fakeHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	userRepo := newFakeUserRepo()
	hasher := &fakeHasher{}

	service := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Logger:   newDiscardLogger(),
	})

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	user, err := fx.service.Register(context.Background(), &usecase.RegisterUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "hashed:Password123!", user.PasswordHash, "password must be stored hashed")
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	fx.userRepo.add(&entity.User{Email: "alice@example.com", Username: "alice"})

	_, err := fx.service.Register(context.Background(), &usecase.RegisterUserInput{
		Username: "other",
		Email:    "alice@example.com",
		Password: "Password123!",
	})

	requireAppError(t, err, domainerrors.ErrEmailExists)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestUserService(t)
	fx.userRepo.add(&entity.User{Email: "alice@example.com", Username: "alice"})

	_, err := fx.service.Register(context.Background(), &usecase.RegisterUserInput{
		Username: "alice",
		Email:    "other@example.com",
		Password: "Password123!",
	})

	requireAppError(t, err, domainerrors.ErrUsernameExists)
}

// A registration that loses the insert race still reports the right duplicate,
// because the constraint mapping, not the pre-check, is authoritative.
func TestUserService_Register_ConstraintRaceMapsToDuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	// Simulate the race: the pre-check sees no user, the insert collides.
	fx.userRepo.createErr = errors.WithStack(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Password123!",
	})

	requireAppError(t, err, domainerrors.ErrEmailExists)
}

func TestUserService_GetBySubject_Success(t *testing.T) {
	fx := createTestUserService(t)
	user := fx.userRepo.add(&entity.User{Email: "alice@example.com", Username: "alice"})

	got, err := fx.service.GetBySubject(context.Background(), user.ID.String())

	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestUserService_GetBySubject_StaleSubject(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.GetBySubject(context.Background(), uuid.NewString())

	requireAppError(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_GetBySubject_NonUUIDSubject(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.GetBySubject(context.Background(), "not-a-uuid")

	requireAppError(t, err, domainerrors.ErrTokenInvalid)
}

func TestUserService_DeleteBySubject_Success(t *testing.T) {
	fx := createTestUserService(t)
	user := fx.userRepo.add(&entity.User{Email: "alice@example.com", Username: "alice"})

	err := fx.service.DeleteBySubject(context.Background(), user.ID.String())

	require.NoError(t, err)
	_, err = fx.service.GetBySubject(context.Background(), user.ID.String())
	requireAppError(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_DeleteBySubject_StaleSubject(t *testing.T) {
	fx := createTestUserService(t)

	err := fx.service.DeleteBySubject(context.Background(), uuid.NewString())

	requireAppError(t, err, domainerrors.ErrUserNotFound)
}
