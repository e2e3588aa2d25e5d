package commands

import (
	"context"
	"errors"
	"time"

	"parcelmatch/internal/core/domain/model/escrow"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/shipment"
	"parcelmatch/internal/core/ports"
	"parcelmatch/internal/metrics"
	"parcelmatch/internal/pkg/errs"
)

// HoldPaymentResult carries the new ledger entry and the matched shipment.
type HoldPaymentResult struct {
	Transaction *escrow.Transaction
	Shipment    *shipment.Shipment
}

// HoldPaymentCommandHandler escrows the shipment's price and matches the
// shipment to the chosen courier. The Held ledger row and the Open->Matched
// transition commit atomically; a partial hold is never observable.
type HoldPaymentCommandHandler struct {
	uowFactory HoldUoWFactory
	relay      *ConversationRelay
}

// NewHoldPaymentCommandHandler creates a handler for payment holds.
func NewHoldPaymentCommandHandler(
	uowFactory HoldUoWFactory,
	relay *ConversationRelay,
) HoldPaymentCommandHandler {
	return HoldPaymentCommandHandler{
		uowFactory: uowFactory,
		relay:      relay,
	}
}

// Handle places the hold. Only the sender may hold; a shipment with a live
// hold conflicts regardless of its status, so a repeated hold on an already
// matched shipment reads as Conflict rather than InvalidState.
func (h HoldPaymentCommandHandler) Handle(ctx context.Context, cmd HoldPaymentCommand) (*HoldPaymentResult, error) {
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

	if !aggregate.IsSender(cmd.SenderID()) {
		return nil, errs.NewForbiddenError("only the shipment's sender may hold payment")
	}

	txRepo := uow.TransactionRepository()

	_, err = txRepo.GetHeldByShipment(ctx, aggregate.ID())
	if err == nil {
		return nil, errs.NewConflictError("shipment already has a held payment")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	method, err := h.resolvePaymentMethod(ctx, uow, cmd)
	if err != nil {
		return nil, err
	}

	hold, err := escrow.NewHold(
		kernel.NewUUID(),
		aggregate.ID(),
		aggregate.Price(),
		cmd.SenderID(),
		cmd.CourierID(),
		method.ID,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = txRepo.Add(ctx, hold); err != nil {
		return nil, err
	}

	if err = aggregate.AssignCourier(cmd.CourierID()); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.PaymentsHeldTotal.Inc()

	h.relay.SetStatus(ctx,
		aggregate.ID(), aggregate.Sender(), cmd.CourierID(),
		ports.ConversationStatusMatched)

	return &HoldPaymentResult{
		Transaction: hold,
		Shipment:    aggregate,
	}, nil
}

func (h HoldPaymentCommandHandler) resolvePaymentMethod(
	ctx context.Context,
	uow HoldUoW,
	cmd HoldPaymentCommand,
) (*ports.PaymentMethod, error) {
	methodRepo := uow.PaymentMethodRepository()

	if id := cmd.PaymentMethodID(); id != nil {
		method, err := methodRepo.Get(ctx, *id)
		if err != nil {
			return nil, err
		}

		if !method.UserID.IsEqual(cmd.SenderID()) {
			return nil, errs.NewValueIsInvalidError("paymentMethodId")
		}

		return method, nil
	}

	return methodRepo.GetDefaultForUser(ctx, cmd.SenderID())
}
