package ports

import (
	"context"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/offer"
)

// OfferRepository defines the persistence contract for offer entities.
// Offers are never deleted; rejected rows stay for audit.
type OfferRepository interface {
	// Add persists a new offer. The store enforces at most one offer per
	// (shipment, courier) pair; a duplicate surfaces as an
	// errs.ConflictError.
	Add(ctx context.Context, entity *offer.Offer) error

	// Update persists changes to an existing offer.
	Update(ctx context.Context, entity *offer.Offer) error

	// Get retrieves an offer by its unique identifier.
	// Returns an errs.ObjectNotFoundError when no such offer exists.
	Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error)

	// GetByShipmentAndCourier retrieves the courier's offer on a shipment
	// regardless of its status. Returns an errs.ObjectNotFoundError when the
	// courier has not offered.
	GetByShipmentAndCourier(ctx context.Context, shipmentID, courierID kernel.UUID) (*offer.Offer, error)

	// GetAllByShipment retrieves every offer placed on a shipment.
	GetAllByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*offer.Offer, error)
}
