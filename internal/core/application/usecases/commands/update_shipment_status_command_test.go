package commands_test

import (
	"testing"

	"parcelmatch/internal/core/application/usecases/commands"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/shipment"
	"parcelmatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateShipmentStatusCommand_AllowedTargets(t *testing.T) {
	for _, target := range []shipment.Status{shipment.Cancelled, shipment.OnWay, shipment.Delivered} {
		cmd, err := commands.NewUpdateShipmentStatusCommand(kernel.NewUUID(), kernel.NewUUID(), target)
		require.NoError(t, err, target.String())
		assert.Equal(t, target, cmd.Target())
	}
}

func TestNewUpdateShipmentStatusCommand_RejectedTargets(t *testing.T) {
	for _, target := range []shipment.Status{shipment.Open, shipment.Matched, shipment.HandedOver, shipment.Unknown} {
		_, err := commands.NewUpdateShipmentStatusCommand(kernel.NewUUID(), kernel.NewUUID(), target)
		require.Error(t, err, target.String())
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestNewUpdateShipmentStatusCommand_InvalidActor(t *testing.T) {
	_, err := commands.NewUpdateShipmentStatusCommand(kernel.NewUUID(), kernel.UUID{}, shipment.Cancelled)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
