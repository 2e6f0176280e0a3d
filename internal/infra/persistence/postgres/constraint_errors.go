package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

// isUniqueConstraintViolation reports whether err is a unique constraint violation.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	return false
}

// violatedConstraint returns the name of the violated constraint, if the
// driver exposed it. Falls back to scanning the error text so the mapping
// still works when GORM has already translated the driver error.
func violatedConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ConstraintName != "" {
		return pgErr.ConstraintName
	}

	msg := err.Error()
	for _, name := range []string{"uq_users_email", "uq_users_username"} {
		if strings.Contains(msg, name) {
			return name
		}
	}

	return ""
}
