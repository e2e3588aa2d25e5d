package commands_test

import (
	"testing"

	"parcelmatch/internal/core/application/usecases/commands"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The identifier-pair commands share the same constructor contract: both
// UUIDs must be constructed values, and the zero-value command fails its
// guard check.

func TestNewConfirmHandoverCommand(t *testing.T) {
	shipmentID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	cmd, err := commands.NewConfirmHandoverCommand(shipmentID, actorID)
	require.NoError(t, err)
	assert.Equal(t, shipmentID, cmd.ShipmentID())
	assert.Equal(t, actorID, cmd.ActorID())

	_, err = commands.NewConfirmHandoverCommand(kernel.UUID{}, actorID)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	zero := commands.ConfirmHandoverCommand{}
	require.ErrorIs(t, zero.Validate(), commands.ErrConfirmHandoverCommandIsNotConstructed)
}

func TestNewConfirmDeliveryCommand(t *testing.T) {
	cmd, err := commands.NewConfirmDeliveryCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	_, err = commands.NewConfirmDeliveryCommand(kernel.NewUUID(), kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	zero := commands.ConfirmDeliveryCommand{}
	require.ErrorIs(t, zero.Validate(), commands.ErrConfirmDeliveryCommandIsNotConstructed)
}

func TestNewCreateOfferCommand(t *testing.T) {
	offerID := kernel.NewUUID()
	shipmentID := kernel.NewUUID()
	courierID := kernel.NewUUID()

	cmd, err := commands.NewCreateOfferCommand(offerID, shipmentID, courierID, "can pick up tomorrow")
	require.NoError(t, err)
	assert.Equal(t, offerID, cmd.OfferID())
	assert.Equal(t, shipmentID, cmd.ShipmentID())
	assert.Equal(t, courierID, cmd.CourierID())
	assert.Equal(t, "can pick up tomorrow", cmd.Message())

	_, err = commands.NewCreateOfferCommand(offerID, shipmentID, courierID, "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateOfferCommand(kernel.UUID{}, shipmentID, courierID, "hello")
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewAcceptOfferCommand(t *testing.T) {
	cmd, err := commands.NewAcceptOfferCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	_, err = commands.NewAcceptOfferCommand(kernel.UUID{}, kernel.NewUUID())
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewRejectOfferCommand(t *testing.T) {
	cmd, err := commands.NewRejectOfferCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	_, err = commands.NewRejectOfferCommand(kernel.NewUUID(), kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewHoldPaymentCommand(t *testing.T) {
	shipmentID := kernel.NewUUID()
	sender := kernel.NewUUID()
	courier := kernel.NewUUID()

	cmd, err := commands.NewHoldPaymentCommand(shipmentID, sender, courier, nil)
	require.NoError(t, err)
	assert.Nil(t, cmd.PaymentMethodID())

	method := kernel.NewUUID()
	cmd, err = commands.NewHoldPaymentCommand(shipmentID, sender, courier, &method)
	require.NoError(t, err)
	require.NotNil(t, cmd.PaymentMethodID())
	assert.Equal(t, method, *cmd.PaymentMethodID())

	invalid := kernel.UUID{}
	_, err = commands.NewHoldPaymentCommand(shipmentID, sender, courier, &invalid)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewReleasePaymentCommand(t *testing.T) {
	cmd, err := commands.NewReleasePaymentCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	_, err = commands.NewReleasePaymentCommand(kernel.UUID{}, kernel.NewUUID())
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewRefundPaymentCommand(t *testing.T) {
	cmd, err := commands.NewRefundPaymentCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	_, err = commands.NewRefundPaymentCommand(kernel.NewUUID(), kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
