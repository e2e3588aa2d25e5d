package commands

import (
	"errors"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/guard"
)

var ErrRejectOfferCommandIsNotConstructed = errors.New(
	"RejectOfferCommand must be created via NewRejectOfferCommand constructor",
)

// RejectOfferCommand declines a pending offer on behalf of the shipment's
// sender. The offer row stays for audit; the shipment is untouched.
type RejectOfferCommand struct {
	offerID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectOfferCommand creates a validated offer rejection command.
func NewRejectOfferCommand(offerID, actorID kernel.UUID) (RejectOfferCommand, error) {
	if err := offerID.Validate(); err != nil {
		return RejectOfferCommand{}, err
	}
	if err := actorID.Validate(); err != nil {
		return RejectOfferCommand{}, err
	}

	return RejectOfferCommand{
		offerID: offerID,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OfferID returns the offer being rejected.
func (c *RejectOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// ActorID returns the acting user, who must be the shipment's sender.
func (c *RejectOfferCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Validate ensures the command was created through the constructor.
func (c *RejectOfferCommand) Validate() error {
	return c.guard.Validate(ErrRejectOfferCommandIsNotConstructed)
}
