// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the single account resource of the service. Email and username are
// both unique login identifiers. PasswordHash holds the bcrypt digest of the
// password credential; it never crosses the delivery boundary.
type User struct {
	ID           uuid.UUID // The unique identifier for the account; token subjects carry it stringified.
	Email        string    // The user's login email, unique across all accounts.
	Username     string    // The user's display handle, also unique.
	PasswordHash string    // bcrypt digest of the password; encodes algorithm, cost and salt together.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
