package commands

import (
	"errors"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/guard"
)

var ErrReleasePaymentCommandIsNotConstructed = errors.New(
	"ReleasePaymentCommand must be created via NewReleasePaymentCommand constructor",
)

// ReleasePaymentCommand releases the shipment's held escrow entry to the
// courier on the payer's say-so, marking the shipment delivered without
// waiting for the delivery gate.
type ReleasePaymentCommand struct {
	shipmentID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewReleasePaymentCommand creates a validated payment release command.
func NewReleasePaymentCommand(shipmentID, actorID kernel.UUID) (ReleasePaymentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return ReleasePaymentCommand{}, err
	}
	if err := actorID.Validate(); err != nil {
		return ReleasePaymentCommand{}, err
	}

	return ReleasePaymentCommand{
		shipmentID: shipmentID,
		actorID:    actorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// ShipmentID returns the shipment whose hold is being released.
func (c *ReleasePaymentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ActorID returns the acting user, who must be the hold's payer.
func (c *ReleasePaymentCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Validate ensures the command was created through the constructor.
func (c *ReleasePaymentCommand) Validate() error {
	return c.guard.Validate(ErrReleasePaymentCommandIsNotConstructed)
}
