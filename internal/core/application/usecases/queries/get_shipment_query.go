package queries

import (
	"errors"
	"time"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/shipment"
	"parcelmatch/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves one shipment's full state, including both
// confirmation gates.
type GetShipmentQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for a single shipment.
func NewGetShipmentQuery(shipmentID kernel.UUID) (GetShipmentQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}

	return GetShipmentQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// ShipmentID returns the requested shipment.
func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// GetShipmentQueryResponse is the full read model of one shipment.
type GetShipmentQueryResponse struct {
	ID                       kernel.UUID
	SenderID                 kernel.UUID
	CourierID                *kernel.UUID
	Origin                   string
	Destination              string
	WeightGrams              int
	Content                  string
	Price                    kernel.Money
	Status                   shipment.Status
	SenderConfirmedHandover  bool
	CourierConfirmedHandover bool
	SenderConfirmedDelivery  bool
	CourierConfirmedDelivery bool
	HandoverConfirmedAt      *time.Time
	DeliveryConfirmedAt      *time.Time
}
