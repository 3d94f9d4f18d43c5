package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapPostgresError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, mapPostgresError(nil))
	})

	t.Run("non postgres error passes through", func(t *testing.T) {
		plain := errors.New("boom")
		assert.Same(t, plain, mapPostgresError(plain))
	})

	t.Run("unique violation", func(t *testing.T) {
		err := mapPostgresError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "idx_org_invites_pending"})
		assert.True(t, IsUniqueViolation(err))
		assert.Contains(t, err.Error(), "idx_org_invites_pending")
	})

	t.Run("foreign key violation", func(t *testing.T) {
		err := mapPostgresError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
		assert.ErrorIs(t, err, ErrForeignKeyViolation)
	})

	t.Run("check violation", func(t *testing.T) {
		err := mapPostgresError(&pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: "chk_org_members_role"})
		assert.ErrorIs(t, err, ErrCheckViolation)
	})

	t.Run("other codes keep the original", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: pgerrcode.DiskFull, Message: "disk full"}
		err := mapPostgresError(pgErr)
		assert.ErrorIs(t, err, pgErr)
		assert.False(t, IsUniqueViolation(err))
	})
}
