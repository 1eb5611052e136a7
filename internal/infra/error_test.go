//go:build unit

package infra

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	t.Run("defaults to db failure", func(t *testing.T) {
		err := WrapRepoErr("failed to load order", assert.AnError)

		assert.True(t, IsKind(err, KindDBFailure))
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "failed to load order")
	})

	t.Run("explicit kind wins", func(t *testing.T) {
		err := WrapRepoErr("order not found", pgx.ErrNoRows, KindNotFound)

		assert.True(t, IsKind(err, KindNotFound))
		assert.False(t, IsKind(err, KindDBFailure))
	})

	t.Run("unique violation becomes duplicate key", func(t *testing.T) {
		err := WrapRepoErr("failed to create user", &pgconn.PgError{Code: "23505"})

		assert.True(t, IsKind(err, KindDuplicateKey))
	})

	t.Run("nil cause", func(t *testing.T) {
		err := WrapRepoErr("payment no longer accepts slips", nil, KindConflict)

		assert.True(t, IsKind(err, KindConflict))
		assert.Equal(t, "CONFLICT: payment no longer accepts slips", err.Error())
	})
}
