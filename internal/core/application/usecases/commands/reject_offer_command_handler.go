package commands

import (
	"context"

	"parcelmatch/internal/core/domain/model/offer"
	"parcelmatch/internal/pkg/errs"
)

// RejectOfferCommandHandler declines a single pending offer.
type RejectOfferCommandHandler struct {
	uowFactory NegotiationUoWFactory
}

// NewRejectOfferCommandHandler creates a handler for offer rejection.
func NewRejectOfferCommandHandler(uowFactory NegotiationUoWFactory) RejectOfferCommandHandler {
	return RejectOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle rejects the offer. Only the shipment's sender may reject, and only
// while the offer is still pending.
func (h RejectOfferCommandHandler) Handle(ctx context.Context, cmd RejectOfferCommand) (*offer.Offer, error) {
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

	rejected, err := offerRepo.Get(ctx, cmd.OfferID())
	if err != nil {
		return nil, err
	}

	aggregate, err := uow.ShipmentRepository().Get(ctx, rejected.Shipment())
	if err != nil {
		return nil, err
	}

	if !aggregate.IsSender(cmd.ActorID()) {
		return nil, errs.NewForbiddenError("only the shipment's sender may reject an offer")
	}

	if err = rejected.Reject(); err != nil {
		return nil, err
	}

	if err = offerRepo.Update(ctx, rejected); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return rejected, nil
}
