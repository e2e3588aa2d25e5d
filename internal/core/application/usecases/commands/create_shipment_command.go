package commands

import (
	"errors"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/errs"
	"parcelmatch/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand opens a new shipment owned by the sender.
// Route and package facts are immutable for the shipment's lifetime.
//
// Example:
//
//	price, _ := kernel.NewMoney(4500, "EUR")
//	cmd, err := commands.NewCreateShipmentCommand(
//	    kernel.NewUUID(), senderID, "Berlin", "Munich", 2500, "books", price)
//	if err != nil {
//	    return err
//	}
type CreateShipmentCommand struct {
	shipmentID  kernel.UUID
	senderID    kernel.UUID
	origin      string
	destination string
	weightGrams int
	content     string
	price       kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a validated command to open a shipment.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	senderID kernel.UUID,
	origin string,
	destination string,
	weightGrams int,
	content string,
	price kernel.Money,
) (CreateShipmentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return CreateShipmentCommand{}, err
	}
	if err := senderID.Validate(); err != nil {
		return CreateShipmentCommand{}, err
	}
	if origin == "" {
		return CreateShipmentCommand{}, errs.NewValueIsRequiredError("origin")
	}
	if destination == "" {
		return CreateShipmentCommand{}, errs.NewValueIsRequiredError("destination")
	}
	if err := price.Validate(); err != nil {
		return CreateShipmentCommand{}, err
	}

	return CreateShipmentCommand{
		shipmentID:  shipmentID,
		senderID:    senderID,
		origin:      origin,
		destination: destination,
		weightGrams: weightGrams,
		content:     content,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// ShipmentID returns the identifier for the new shipment.
func (c *CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// SenderID returns the owning sender.
func (c *CreateShipmentCommand) SenderID() kernel.UUID {
	return c.senderID
}

// Origin returns the pickup city.
func (c *CreateShipmentCommand) Origin() string {
	return c.origin
}

// Destination returns the delivery city.
func (c *CreateShipmentCommand) Destination() string {
	return c.destination
}

// WeightGrams returns the package weight in grams.
func (c *CreateShipmentCommand) WeightGrams() int {
	return c.weightGrams
}

// Content returns the package content description.
func (c *CreateShipmentCommand) Content() string {
	return c.content
}

// Price returns the carriage price.
func (c *CreateShipmentCommand) Price() kernel.Money {
	return c.price
}

// Validate ensures the command was created through the constructor.
func (c *CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}
