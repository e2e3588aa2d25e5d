package commands

import (
	"errors"
	"fmt"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/shipment"
	"parcelmatch/internal/pkg/errs"
	"parcelmatch/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand is the coarse-grained status path: cancellation
// by the sender, and the courier's direct on-way/delivered transitions that
// bypass the confirmation gates. Other targets are rejected; matching and the
// dual-confirmation gates have their own commands.
type UpdateShipmentStatusCommand struct {
	shipmentID kernel.UUID
	actorID    kernel.UUID
	target     shipment.Status

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a validated coarse status command.
// Allowed targets: Cancelled, OnWay, Delivered.
func NewUpdateShipmentStatusCommand(
	shipmentID kernel.UUID,
	actorID kernel.UUID,
	target shipment.Status,
) (UpdateShipmentStatusCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}
	if err := actorID.Validate(); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}
	if target != shipment.Cancelled && target != shipment.OnWay && target != shipment.Delivered {
		return UpdateShipmentStatusCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid target for a direct status update", target))
	}

	return UpdateShipmentStatusCommand{
		shipmentID: shipmentID,
		actorID:    actorID,
		target:     target,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// ShipmentID returns the shipment to update.
func (c *UpdateShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ActorID returns the authenticated caller.
func (c *UpdateShipmentStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Target returns the requested status.
func (c *UpdateShipmentStatusCommand) Target() shipment.Status {
	return c.target
}

// Validate ensures the command was created through the constructor.
func (c *UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}
