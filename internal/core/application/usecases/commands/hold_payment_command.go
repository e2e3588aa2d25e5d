package commands

import (
	"errors"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/guard"
)

var ErrHoldPaymentCommandIsNotConstructed = errors.New(
	"HoldPaymentCommand must be created via NewHoldPaymentCommand constructor",
)

// HoldPaymentCommand escrows the shipment's price against the sender's
// payment method and matches the shipment to the chosen courier in the same
// transaction. This is the direct matching path that bypasses offers.
// PaymentMethodID is optional; when nil the sender's default method is used.
type HoldPaymentCommand struct {
	shipmentID      kernel.UUID
	senderID        kernel.UUID
	courierID       kernel.UUID
	paymentMethodID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewHoldPaymentCommand creates a validated payment hold command.
func NewHoldPaymentCommand(
	shipmentID, senderID, courierID kernel.UUID,
	paymentMethodID *kernel.UUID,
) (HoldPaymentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return HoldPaymentCommand{}, err
	}
	if err := senderID.Validate(); err != nil {
		return HoldPaymentCommand{}, err
	}
	if err := courierID.Validate(); err != nil {
		return HoldPaymentCommand{}, err
	}
	if paymentMethodID != nil {
		if err := paymentMethodID.Validate(); err != nil {
			return HoldPaymentCommand{}, err
		}
	}

	return HoldPaymentCommand{
		shipmentID:      shipmentID,
		senderID:        senderID,
		courierID:       courierID,
		paymentMethodID: paymentMethodID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// ShipmentID returns the shipment whose price is being escrowed.
func (c *HoldPaymentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// SenderID returns the paying sender.
func (c *HoldPaymentCommand) SenderID() kernel.UUID {
	return c.senderID
}

// CourierID returns the courier the shipment is matched to.
func (c *HoldPaymentCommand) CourierID() kernel.UUID {
	return c.courierID
}

// PaymentMethodID returns the explicit payment method, or nil for the
// sender's default.
func (c *HoldPaymentCommand) PaymentMethodID() *kernel.UUID {
	return c.paymentMethodID
}

// Validate ensures the command was created through the constructor.
func (c *HoldPaymentCommand) Validate() error {
	return c.guard.Validate(ErrHoldPaymentCommandIsNotConstructed)
}
