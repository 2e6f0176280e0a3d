// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence. The application layer handles
// these outcomes without depending on database-specific errors.
var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when the email unique constraint is violated.
	// The constraint is the authoritative duplicate signal; any application-level
	// pre-check is only a fast path.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateUsername is returned when the username unique constraint is violated.
	ErrDuplicateUsername = errors.New("username already registered")
)

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Delete removes the user with the given ID. Returns ErrUserNotFound
	// when no row was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
