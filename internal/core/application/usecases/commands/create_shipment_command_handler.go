package commands

import (
	"context"

	"parcelmatch/internal/core/domain/model/shipment"
	"parcelmatch/internal/metrics"
)

// CreateShipmentCommandHandler handles the business logic for opening shipments.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
// Requires a ShipmentUoWFactory for transactional persistence.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command and returns the Open shipment.
func (h CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
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

	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(),
		cmd.SenderID(),
		cmd.Origin(),
		cmd.Destination(),
		cmd.WeightGrams(),
		cmd.Content(),
		cmd.Price(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.ShipmentsCreatedTotal.Inc()
	return aggregate, nil
}
