package commands

import (
	"context"
	"errors"
	"time"

	"parcelmatch/internal/core/domain/model/shipment"
	"parcelmatch/internal/metrics"
	"parcelmatch/internal/pkg/errs"
)

// ConfirmDeliveryResult reports the outcome of a delivery confirmation.
type ConfirmDeliveryResult struct {
	Shipment      *shipment.Shipment
	BothConfirmed bool
	Message       string
}

// ConfirmDeliveryCommandHandler drives the dual-confirmation delivery gate.
// When the gate closes, the shipment row and the held ledger row are updated
// in the same transaction: a delivered shipment with an unreleased hold is
// never observable.
type ConfirmDeliveryCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmations.
func NewConfirmDeliveryCommandHandler(uowFactory LedgerUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the actor's confirmation. Re-confirming is a no-op. When the
// second confirmation arrives, the shipment becomes Delivered and the held
// escrow entry releases to the courier.
func (h ConfirmDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmDeliveryCommand,
) (*ConfirmDeliveryResult, error) {
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

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	bothConfirmed, err := aggregate.ConfirmDelivery(cmd.ActorID(), now)
	if err != nil {
		return nil, err
	}

	released := false

	if bothConfirmed {
		txRepo := uow.TransactionRepository()

		hold, err := txRepo.GetHeldByShipment(ctx, aggregate.ID())
		switch {
		case err == nil:
			if err = hold.Release(*aggregate.Courier(), now); err != nil {
				return nil, err
			}
			if err = txRepo.Update(ctx, hold); err != nil {
				return nil, err
			}
			released = true
		case errors.Is(err, errs.ErrObjectNotFound):
			// Matched without a hold (offer path): nothing to release.
		default:
			return nil, err
		}
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.DeliveriesConfirmedTotal.Inc()
	if released {
		metrics.PaymentsReleasedTotal.Inc()
	}

	message := MsgDeliveryWaiting
	if bothConfirmed {
		message = MsgDeliveryBothConfirmed
	}

	return &ConfirmDeliveryResult{
		Shipment:      aggregate,
		BothConfirmed: bothConfirmed,
		Message:       message,
	}, nil
}
