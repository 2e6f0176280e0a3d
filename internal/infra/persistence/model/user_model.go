package model

import (
	"time"

	"github.com/google/uuid"
)

// Named unique constraints let the repository tell a duplicate email apart
// from a duplicate username when PostgreSQL rejects an insert.
const (
	ConstraintUsersEmail    = "uq_users_email"
	ConstraintUsersUsername = "uq_users_username"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v4().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_users_username"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
