package commands

import (
	"context"
	"time"

	"parcelmatch/internal/core/domain/model/escrow"
	"parcelmatch/internal/core/domain/model/shipment"
	"parcelmatch/internal/metrics"
	"parcelmatch/internal/pkg/errs"
)

// ReleasePaymentResult carries both rows changed by a release.
type ReleasePaymentResult struct {
	Transaction *escrow.Transaction
	Shipment    *shipment.Shipment
}

// ReleasePaymentCommandHandler settles a held escrow entry in the courier's
// favor. The Held->Released flip and the shipment's move to Delivered commit
// as one transaction.
type ReleasePaymentCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewReleasePaymentCommandHandler creates a handler for payment release.
func NewReleasePaymentCommandHandler(uowFactory LedgerUoWFactory) ReleasePaymentCommandHandler {
	return ReleasePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle releases the hold. Only the payer may release.
func (h ReleasePaymentCommandHandler) Handle(
	ctx context.Context,
	cmd ReleasePaymentCommand,
) (*ReleasePaymentResult, error) {
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

	txRepo := uow.TransactionRepository()

	hold, err := txRepo.GetHeldByShipment(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if !hold.Payer().IsEqual(cmd.ActorID()) {
		return nil, errs.NewForbiddenError("only the payer may release a held payment")
	}

	shipmentRepo := uow.ShipmentRepository()

	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = hold.Release(hold.Payee(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = txRepo.Update(ctx, hold); err != nil {
		return nil, err
	}

	if err = aggregate.SettleDelivered(); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.PaymentsReleasedTotal.Inc()

	return &ReleasePaymentResult{
		Transaction: hold,
		Shipment:    aggregate,
	}, nil
}
