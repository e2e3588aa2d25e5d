package kernel_test

import (
	"testing"

	"parcelmatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid money", func(t *testing.T) {
		m, err := kernel.NewMoney(4500, "EUR")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, int64(4500), m.Amount())
		assert.Equal(t, "EUR", m.Currency())
		assert.Equal(t, "4500 EUR", m.String())
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		m, err := kernel.NewMoney(0, "USD")

		require.NoError(t, err)
		assert.Equal(t, int64(0), m.Amount())
	})

	t.Run("negative amount fails", func(t *testing.T) {
		_, err := kernel.NewMoney(-1, "EUR")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount")
	})

	t.Run("bad currency fails", func(t *testing.T) {
		_, err := kernel.NewMoney(100, "EURO")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "currency")
	})
}

func TestMoney_IsEqual(t *testing.T) {
	a, _ := kernel.NewMoney(100, "EUR")
	b, _ := kernel.NewMoney(100, "EUR")
	c, _ := kernel.NewMoney(100, "USD")
	d, _ := kernel.NewMoney(200, "EUR")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(d))
}

func TestMoney_Validate(t *testing.T) {
	var zero kernel.Money

	err := zero.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Money must be created")
}
