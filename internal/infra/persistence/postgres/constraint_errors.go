package postgres

import (
	"context"

	domainerrors "localdrop/internal/domain/errors"
	"localdrop/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// isUniqueConstraintViolation reports a duplicate key, whether GORM translated it or not.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	pgErr, ok := errors.AsType[*pgconn.PgError](err)

	return ok && pgErr.Code == pgUniqueViolation
}

// storageError wraps a driver failure so it surfaces as a retryable 503. Cancellation by the caller
// is passed through untouched.
func storageError(err error, details string) error {
	if errors.Is(err, context.Canceled) {
		return errors.Wrap(err, details)
	}

	return domainerrors.NewStorageUnavailableError(err, details)
}
