package commands

import (
	"errors"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand records one party's half of the delivery gate.
// When both parties have confirmed, the shipment is delivered and the held
// escrow entry releases to the courier in the same transaction.
type ConfirmDeliveryCommand struct {
	shipmentID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a validated delivery confirmation command.
func NewConfirmDeliveryCommand(shipmentID, actorID kernel.UUID) (ConfirmDeliveryCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return ConfirmDeliveryCommand{}, err
	}
	if err := actorID.Validate(); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return ConfirmDeliveryCommand{
		shipmentID: shipmentID,
		actorID:    actorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// ShipmentID returns the shipment being delivered.
func (c *ConfirmDeliveryCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ActorID returns the confirming party.
func (c *ConfirmDeliveryCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Validate ensures the command was created through the constructor.
func (c *ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}
