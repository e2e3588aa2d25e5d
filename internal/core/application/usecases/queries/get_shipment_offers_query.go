package queries

import (
	"errors"
	"time"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/offer"
	"parcelmatch/internal/pkg/guard"
)

var ErrGetShipmentOffersQueryIsNotConstructed = errors.New(
	"GetShipmentOffersQuery must be created via NewGetShipmentOffersQuery constructor",
)

// GetShipmentOffersQuery retrieves every offer placed on a shipment,
// including accepted and rejected ones.
type GetShipmentOffersQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentOffersQuery creates a query for a shipment's offers.
func NewGetShipmentOffersQuery(shipmentID kernel.UUID) (GetShipmentOffersQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentOffersQuery{}, err
	}

	return GetShipmentOffersQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// ShipmentID returns the shipment whose offers are requested.
func (q GetShipmentOffersQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentOffersQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentOffersQueryIsNotConstructed)
}

// GetShipmentOffersQueryResponse is one offer row.
type GetShipmentOffersQueryResponse struct {
	ID        kernel.UUID
	CourierID kernel.UUID
	Message   string
	Status    offer.Status
	CreatedAt time.Time
}
