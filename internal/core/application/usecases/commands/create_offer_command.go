package commands

import (
	"errors"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/errs"
	"parcelmatch/internal/pkg/guard"
)

var ErrCreateOfferCommandIsNotConstructed = errors.New(
	"CreateOfferCommand must be created via NewCreateOfferCommand constructor",
)

// CreateOfferCommand places a courier's bid on an open shipment. The message
// accompanies the bid and is posted into the conversation between the courier
// and the sender.
type CreateOfferCommand struct {
	offerID    kernel.UUID
	shipmentID kernel.UUID
	courierID  kernel.UUID
	message    string

	guard guard.ConstructorGuard
}

// NewCreateOfferCommand creates a validated offer placement command.
func NewCreateOfferCommand(offerID, shipmentID, courierID kernel.UUID, message string) (CreateOfferCommand, error) {
	if err := offerID.Validate(); err != nil {
		return CreateOfferCommand{}, err
	}
	if err := shipmentID.Validate(); err != nil {
		return CreateOfferCommand{}, err
	}
	if err := courierID.Validate(); err != nil {
		return CreateOfferCommand{}, err
	}
	if message == "" {
		return CreateOfferCommand{}, errs.NewValueIsRequiredError("message")
	}

	return CreateOfferCommand{
		offerID:    offerID,
		shipmentID: shipmentID,
		courierID:  courierID,
		message:    message,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// OfferID returns the new offer's identifier.
func (c *CreateOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// ShipmentID returns the shipment being bid on.
func (c *CreateOfferCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// CourierID returns the bidding courier.
func (c *CreateOfferCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Message returns the courier's offer message.
func (c *CreateOfferCommand) Message() string {
	return c.message
}

// Validate ensures the command was created through the constructor.
func (c *CreateOfferCommand) Validate() error {
	return c.guard.Validate(ErrCreateOfferCommandIsNotConstructed)
}
