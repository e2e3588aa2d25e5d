package commands

import (
	"context"

	"parcelmatch/internal/core/domain/model/offer"
	"parcelmatch/internal/core/domain/model/shipment"
	"parcelmatch/internal/core/ports"
	"parcelmatch/internal/metrics"
	"parcelmatch/internal/pkg/errs"
)

// AcceptOfferResult carries both rows changed by an acceptance.
type AcceptOfferResult struct {
	Offer    *offer.Offer
	Shipment *shipment.Shipment
}

// AcceptOfferCommandHandler matches a shipment to a courier through offer
// acceptance. The accepted offer, the rejection of every other pending offer,
// and the shipment's Open->Matched transition commit as one transaction.
type AcceptOfferCommandHandler struct {
	uowFactory NegotiationUoWFactory
	relay      *ConversationRelay
}

// NewAcceptOfferCommandHandler creates a handler for offer acceptance.
func NewAcceptOfferCommandHandler(
	uowFactory NegotiationUoWFactory,
	relay *ConversationRelay,
) AcceptOfferCommandHandler {
	return AcceptOfferCommandHandler{
		uowFactory: uowFactory,
		relay:      relay,
	}
}

// Handle accepts the offer. Only the shipment's sender may accept, and only
// while the shipment is still open. The shipment read takes a row lock, so a
// concurrent acceptance waits behind it and then observes the Matched status.
func (h AcceptOfferCommandHandler) Handle(ctx context.Context, cmd AcceptOfferCommand) (*AcceptOfferResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	offerRepo := uow.OfferRepository()

	accepted, err := offerRepo.Get(ctx, cmd.OfferID())
	if err != nil {
		return nil, err
	}

	shipmentRepo := uow.ShipmentRepository()

	aggregate, err := shipmentRepo.Get(ctx, accepted.Shipment())
	if err != nil {
		return nil, err
	}

	if !aggregate.IsSender(cmd.ActorID()) {
		return nil, errs.NewForbiddenError("only the shipment's sender may accept an offer")
	}

	if aggregate.Status() != shipment.Open {
		return nil, errs.NewForbiddenError("offers can only be accepted while the shipment is open")
	}

	if err = accepted.Accept(); err != nil {
		return nil, err
	}

	if err = offerRepo.Update(ctx, accepted); err != nil {
		return nil, err
	}

	siblings, err := offerRepo.GetAllByShipment(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	for _, sibling := range siblings {
		if sibling.ID().IsEqual(accepted.ID()) || sibling.Status() != offer.Pending {
			continue
		}

		if err = sibling.Reject(); err != nil {
			return nil, err
		}

		if err = offerRepo.Update(ctx, sibling); err != nil {
			return nil, err
		}
	}

	if err = aggregate.AssignCourier(accepted.Courier()); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.OffersAcceptedTotal.Inc()

	h.relay.SetStatus(ctx,
		aggregate.ID(), aggregate.Sender(), accepted.Courier(),
		ports.ConversationStatusMatched)

	return &AcceptOfferResult{
		Offer:    accepted,
		Shipment: aggregate,
	}, nil
}
