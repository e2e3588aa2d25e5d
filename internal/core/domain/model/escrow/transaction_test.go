package escrow_test

import (
	"testing"
	"time"

	"parcelmatch/internal/core/domain/model/escrow"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHold(t *testing.T) *escrow.Transaction {
	t.Helper()
	amount, err := kernel.NewMoney(4500, "EUR")
	require.NoError(t, err)

	tx, err := escrow.NewHold(
		kernel.NewUUID(), kernel.NewUUID(), amount,
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	return tx
}

func TestNewHold(t *testing.T) {
	t.Run("creates a held entry", func(t *testing.T) {
		tx := newHold(t)

		require.NoError(t, tx.Validate())
		assert.Equal(t, escrow.Held, tx.Status())
		assert.Nil(t, tx.SettledAt())
		assert.Equal(t, int64(4500), tx.Amount().Amount())
		assert.Equal(t, "EUR", tx.Amount().Currency())
	})

	t.Run("fails with unconstructed amount", func(t *testing.T) {
		var zeroAmount kernel.Money

		_, err := escrow.NewHold(
			kernel.NewUUID(), kernel.NewUUID(), zeroAmount,
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now())

		require.Error(t, err)
	})

	t.Run("fails with invalid payment method", func(t *testing.T) {
		amount, _ := kernel.NewMoney(100, "EUR")
		var invalidMethod kernel.UUID

		_, err := escrow.NewHold(
			kernel.NewUUID(), kernel.NewUUID(), amount,
			kernel.NewUUID(), kernel.NewUUID(), invalidMethod, time.Now())

		require.Error(t, err)
	})
}

func TestTransaction_Release(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)

	t.Run("held entry releases and reaffirms payee", func(t *testing.T) {
		tx := newHold(t)
		courierID := kernel.NewUUID()

		require.NoError(t, tx.Release(courierID, now))

		assert.Equal(t, escrow.Released, tx.Status())
		assert.True(t, tx.Payee().IsEqual(courierID))
		require.NotNil(t, tx.SettledAt())
		assert.Equal(t, now, *tx.SettledAt())
	})

	t.Run("released entry cannot release again", func(t *testing.T) {
		tx := newHold(t)
		require.NoError(t, tx.Release(kernel.NewUUID(), now))

		require.ErrorIs(t, tx.Release(kernel.NewUUID(), now), errs.ErrInvalidState)
	})

	t.Run("refunded entry cannot release", func(t *testing.T) {
		tx := newHold(t)
		require.NoError(t, tx.Refund(now))

		require.ErrorIs(t, tx.Release(kernel.NewUUID(), now), errs.ErrInvalidState)
	})
}

func TestTransaction_Refund(t *testing.T) {
	now := time.Now()

	t.Run("held entry refunds", func(t *testing.T) {
		tx := newHold(t)

		require.NoError(t, tx.Refund(now))

		assert.Equal(t, escrow.Refunded, tx.Status())
		require.NotNil(t, tx.SettledAt())
	})

	t.Run("refunded entry cannot refund again", func(t *testing.T) {
		tx := newHold(t)
		require.NoError(t, tx.Refund(now))

		require.ErrorIs(t, tx.Refund(now), errs.ErrInvalidState)
	})
}

func TestRestoreTransaction(t *testing.T) {
	amount, _ := kernel.NewMoney(4500, "EUR")
	settled := time.Now()

	t.Run("restores a refunded entry", func(t *testing.T) {
		tx, err := escrow.RestoreTransaction(
			kernel.NewUUID(), kernel.NewUUID(), amount, escrow.Refunded,
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), settled.Add(-time.Hour), &settled)

		require.NoError(t, err)
		assert.Equal(t, escrow.Refunded, tx.Status())
		assert.True(t, tx.Status().IsSettled())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := escrow.RestoreTransaction(
			kernel.NewUUID(), kernel.NewUUID(), amount, escrow.Unknown,
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), settled, nil)

		require.Error(t, err)
	})
}

func TestTransaction_Validate(t *testing.T) {
	var tx escrow.Transaction

	require.ErrorIs(t, tx.Validate(), escrow.ErrTransactionIsNotConstructed)
}
