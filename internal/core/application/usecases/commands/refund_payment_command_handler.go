package commands

import (
	"context"
	"time"

	"parcelmatch/internal/core/domain/model/escrow"
	"parcelmatch/internal/core/domain/model/shipment"
	"parcelmatch/internal/metrics"
	"parcelmatch/internal/pkg/errs"
)

// RefundPaymentResult carries both rows changed by a refund.
type RefundPaymentResult struct {
	Transaction *escrow.Transaction
	Shipment    *shipment.Shipment
}

// RefundPaymentCommandHandler returns held funds to the payer and reopens the
// shipment: courier unassigned, confirmation gates reset, status back to Open.
// Both writes commit as one transaction. The refunded row stays in the ledger,
// so a reopened shipment can accumulate several refunded entries over time.
type RefundPaymentCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewRefundPaymentCommandHandler creates a handler for payment refunds.
func NewRefundPaymentCommandHandler(uowFactory LedgerUoWFactory) RefundPaymentCommandHandler {
	return RefundPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle refunds the hold. Only the payer may trigger the refund.
func (h RefundPaymentCommandHandler) Handle(
	ctx context.Context,
	cmd RefundPaymentCommand,
) (*RefundPaymentResult, error) {
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
		return nil, errs.NewForbiddenError("only the payer may refund a held payment")
	}

	shipmentRepo := uow.ShipmentRepository()

	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = hold.Refund(time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = txRepo.Update(ctx, hold); err != nil {
		return nil, err
	}

	if err = aggregate.Reopen(); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.PaymentsRefundedTotal.Inc()

	return &RefundPaymentResult{
		Transaction: hold,
		Shipment:    aggregate,
	}, nil
}
