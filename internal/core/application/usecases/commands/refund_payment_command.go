package commands

import (
	"errors"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/guard"
)

var ErrRefundPaymentCommandIsNotConstructed = errors.New(
	"RefundPaymentCommand must be created via NewRefundPaymentCommand constructor",
)

// RefundPaymentCommand refunds the shipment's held escrow entry to the payer
// and reopens the shipment for a fresh matching cycle.
type RefundPaymentCommand struct {
	shipmentID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewRefundPaymentCommand creates a validated payment refund command.
func NewRefundPaymentCommand(shipmentID, actorID kernel.UUID) (RefundPaymentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return RefundPaymentCommand{}, err
	}
	if err := actorID.Validate(); err != nil {
		return RefundPaymentCommand{}, err
	}

	return RefundPaymentCommand{
		shipmentID: shipmentID,
		actorID:    actorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// ShipmentID returns the shipment whose hold is being refunded.
func (c *RefundPaymentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ActorID returns the acting user, who must be a party to the hold.
func (c *RefundPaymentCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Validate ensures the command was created through the constructor.
func (c *RefundPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRefundPaymentCommandIsNotConstructed)
}
