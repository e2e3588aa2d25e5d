package commands

import (
	"context"
	"errors"
	"time"

	"parcelmatch/internal/core/domain/model/offer"
	"parcelmatch/internal/core/domain/model/shipment"
	"parcelmatch/internal/core/ports"
	"parcelmatch/internal/metrics"
	"parcelmatch/internal/pkg/errs"
)

// CreateOfferCommandHandler places a courier's offer on an open shipment and
// relays the offer message into the sender/courier conversation once the
// offer row is committed.
type CreateOfferCommandHandler struct {
	uowFactory NegotiationUoWFactory
	relay      *ConversationRelay
}

// NewCreateOfferCommandHandler creates a handler for offer placement.
func NewCreateOfferCommandHandler(
	uowFactory NegotiationUoWFactory,
	relay *ConversationRelay,
) CreateOfferCommandHandler {
	return CreateOfferCommandHandler{
		uowFactory: uowFactory,
		relay:      relay,
	}
}

// Handle validates the bid against the shipment and persists it. Offering on
// a non-open shipment and offering on one's own shipment are forbidden; a
// second offer from the same courier is a conflict.
func (h CreateOfferCommandHandler) Handle(ctx context.Context, cmd CreateOfferCommand) (*offer.Offer, error) {
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

	aggregate, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if aggregate.Status() != shipment.Open {
		return nil, errs.NewForbiddenError("offers can only be placed on open shipments")
	}

	if aggregate.IsSender(cmd.CourierID()) {
		return nil, errs.NewForbiddenError("sender cannot offer on their own shipment")
	}

	offerRepo := uow.OfferRepository()

	_, err = offerRepo.GetByShipmentAndCourier(ctx, cmd.ShipmentID(), cmd.CourierID())
	if err == nil {
		return nil, errs.NewConflictError("courier already has an offer on this shipment")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	bid, err := offer.NewOffer(
		cmd.OfferID(),
		cmd.ShipmentID(),
		cmd.CourierID(),
		cmd.Message(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = offerRepo.Add(ctx, bid); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.OffersCreatedTotal.Inc()

	h.relay.PostMessage(ctx,
		aggregate.ID(), aggregate.Sender(), cmd.CourierID(), cmd.CourierID(),
		ports.MessageKindOffer, cmd.Message())

	return bid, nil
}
