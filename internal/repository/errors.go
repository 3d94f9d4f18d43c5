package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors returned by repositories. Callers translate them into
// application errors; gorm.ErrRecordNotFound is passed through unchanged.
var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrCheckViolation      = errors.New("check constraint violation")
	ErrLastOwner           = errors.New("organization must keep at least one owner")
	ErrLastAdmin           = errors.New("workspace must keep at least one admin")
)

// mapPostgresError maps PostgreSQL-specific errors to sentinel errors.
// Returns the original error if it's not a PostgreSQL error or doesn't match known patterns.
func mapPostgresError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %s", ErrUniqueViolation, pgErr.ConstraintName)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %s", ErrForeignKeyViolation, pgErr.ConstraintName)
	case pgerrcode.CheckViolation:
		return fmt.Errorf("%w: %s", ErrCheckViolation, pgErr.ConstraintName)
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
		return fmt.Errorf("transaction conflict (retryable): %w", err)
	default:
		return fmt.Errorf("postgres error [%s]: %s: %w", pgErr.Code, pgErr.Message, err)
	}
}

// IsUniqueViolation reports whether err is (or wraps) a unique constraint violation
func IsUniqueViolation(err error) bool {
	return errors.Is(err, ErrUniqueViolation)
}
