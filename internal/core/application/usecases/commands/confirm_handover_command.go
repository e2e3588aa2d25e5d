package commands

import (
	"errors"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/guard"
)

var ErrConfirmHandoverCommandIsNotConstructed = errors.New(
	"ConfirmHandoverCommand must be created via NewConfirmHandoverCommand constructor",
)

// ConfirmHandoverCommand records one party's half of the handover gate.
// The shipment advances to OnWay only once both sender and courier confirmed.
type ConfirmHandoverCommand struct {
	shipmentID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmHandoverCommand creates a validated handover confirmation command.
func NewConfirmHandoverCommand(shipmentID, actorID kernel.UUID) (ConfirmHandoverCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return ConfirmHandoverCommand{}, err
	}
	if err := actorID.Validate(); err != nil {
		return ConfirmHandoverCommand{}, err
	}

	return ConfirmHandoverCommand{
		shipmentID: shipmentID,
		actorID:    actorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// ShipmentID returns the shipment being handed over.
func (c *ConfirmHandoverCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ActorID returns the confirming party.
func (c *ConfirmHandoverCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Validate ensures the command was created through the constructor.
func (c *ConfirmHandoverCommand) Validate() error {
	return c.guard.Validate(ErrConfirmHandoverCommandIsNotConstructed)
}
