package commands

import (
	"errors"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/guard"
)

var ErrAcceptOfferCommandIsNotConstructed = errors.New(
	"AcceptOfferCommand must be created via NewAcceptOfferCommand constructor",
)

// AcceptOfferCommand accepts a pending offer on behalf of the shipment's
// sender. Acceptance matches the shipment to the offering courier and rejects
// every other pending offer in the same transaction.
type AcceptOfferCommand struct {
	offerID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOfferCommand creates a validated offer acceptance command.
func NewAcceptOfferCommand(offerID, actorID kernel.UUID) (AcceptOfferCommand, error) {
	if err := offerID.Validate(); err != nil {
		return AcceptOfferCommand{}, err
	}
	if err := actorID.Validate(); err != nil {
		return AcceptOfferCommand{}, err
	}

	return AcceptOfferCommand{
		offerID: offerID,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OfferID returns the offer being accepted.
func (c *AcceptOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// ActorID returns the acting user, who must be the shipment's sender.
func (c *AcceptOfferCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Validate ensures the command was created through the constructor.
func (c *AcceptOfferCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOfferCommandIsNotConstructed)
}
