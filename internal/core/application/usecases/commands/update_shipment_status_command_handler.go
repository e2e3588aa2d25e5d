package commands

import (
	"context"

	"parcelmatch/internal/core/domain/model/shipment"
)

// UpdateShipmentStatusCommandHandler handles the coarse status path.
// Authorization is per-target: only the sender may cancel, only the assigned
// courier may mark the shipment on its way or delivered.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateShipmentStatusCommandHandler creates a handler for direct status updates.
func NewUpdateShipmentStatusCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the requested transition and returns the updated shipment.
// The precondition re-check happens inside the transaction, so a concurrent
// caller losing the race observes a failing check rather than corrupting state.
func (h UpdateShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateShipmentStatusCommand,
) (*shipment.Shipment, error) {
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

	switch cmd.Target() {
	case shipment.Cancelled:
		err = aggregate.Cancel(cmd.ActorID())
	case shipment.OnWay:
		err = aggregate.MarkOnWay(cmd.ActorID())
	case shipment.Delivered:
		err = aggregate.MarkDelivered(cmd.ActorID())
	}
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
