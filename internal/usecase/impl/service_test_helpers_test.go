package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserRepo is an in-memory UserRepository keyed by ID with a unique-email
// and unique-username check, mirroring the database constraints.
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User

	findByEmailErr error
	createErr      error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.findByEmailErr != nil {
		return nil, r.findByEmailErr
	}
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
		if existing.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = user

	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.users, id)

	return nil
}

func (r *fakeUserRepo) add(user *entity.User) *entity.User {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user

	return user
}

// fakeHasher records and compares plaintext with a reversible prefix so tests
// can assert behavior without paying for bcrypt.
type fakeHasher struct {
	hashErr  error
	checkErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) (bool, error) {
	if h.checkErr != nil {
		return false, h.checkErr
	}

	return hash == "hashed:"+password, nil
}

// fakeTokenService issues predictable tokens of the form "token-for:<subject>".
type fakeTokenService struct {
	encodeErr error
}

func (s *fakeTokenService) Encode(subject string, _ map[string]any) (string, error) {
	if s.encodeErr != nil {
		return "", s.encodeErr
	}

	return "token-for:" + subject, nil
}

func (s *fakeTokenService) Decode(_ string) (*service.Claims, error) {
	panic("not used in usecase tests")
}

func (s *fakeTokenService) AccessTokenTTL() time.Duration {
	return 15 * time.Minute
}
