package commands

import (
	"context"
	"time"

	"parcelmatch/internal/core/domain/model/shipment"
)

// Progress messages returned by the confirmation gates.
const (
	MsgHandoverBothConfirmed = "both parties confirmed the handover; the shipment is on its way"
	MsgHandoverWaiting       = "handover confirmed; waiting for the other party"
	MsgDeliveryBothConfirmed = "both parties confirmed the delivery; payment released to the courier"
	MsgDeliveryWaiting       = "delivery confirmed; waiting for the other party"
)

// ConfirmHandoverResult reports the outcome of a handover confirmation.
type ConfirmHandoverResult struct {
	Shipment      *shipment.Shipment
	BothConfirmed bool
	Message       string
}

// ConfirmHandoverCommandHandler drives the dual-confirmation handover gate.
// The confirmation flag write and the possible Matched->OnWay transition are
// one row update inside one transaction; no ledger rows are touched.
type ConfirmHandoverCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewConfirmHandoverCommandHandler creates a handler for handover confirmations.
func NewConfirmHandoverCommandHandler(uowFactory ShipmentUoWFactory) ConfirmHandoverCommandHandler {
	return ConfirmHandoverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the actor's confirmation. Re-confirming is a no-op, not an
// error. When the second confirmation arrives, the shipment advances to OnWay
// and the handover timestamp is stamped.
func (h ConfirmHandoverCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmHandoverCommand,
) (*ConfirmHandoverResult, error) {
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

	repo := uow.ShipmentRepository()
	aggregate, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	bothConfirmed, err := aggregate.ConfirmHandover(cmd.ActorID(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	message := MsgHandoverWaiting
	if bothConfirmed {
		message = MsgHandoverBothConfirmed
	}

	return &ConfirmHandoverResult{
		Shipment:      aggregate,
		BothConfirmed: bothConfirmed,
		Message:       message,
	}, nil
}
