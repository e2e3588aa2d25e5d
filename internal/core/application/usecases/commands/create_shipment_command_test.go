package commands_test

import (
	"testing"

	"parcelmatch/internal/core/application/usecases/commands"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateShipmentCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	sender := kernel.NewUUID()
	price := testPrice(t)

	cmd, err := commands.NewCreateShipmentCommand(id, sender, "Berlin", "Munich", 2500, "books", price)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ShipmentID())
	assert.Equal(t, sender, cmd.SenderID())
	assert.Equal(t, "Berlin", cmd.Origin())
	assert.Equal(t, "Munich", cmd.Destination())
	assert.Equal(t, 2500, cmd.WeightGrams())
	assert.Equal(t, "books", cmd.Content())
	assert.True(t, price.IsEqual(cmd.Price()))
}

func TestNewCreateShipmentCommand_InvalidShipmentID(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand(
		kernel.UUID{}, kernel.NewUUID(), "Berlin", "Munich", 2500, "books", testPrice(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateShipmentCommand_EmptyOrigin(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), "", "Munich", 2500, "books", testPrice(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateShipmentCommand_EmptyDestination(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Berlin", "", 2500, "books", testPrice(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateShipmentCommand_UnconstructedPrice(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Berlin", "Munich", 2500, "books", kernel.Money{})
	require.Error(t, err)
}
