// Package offerrepo provides data transfer objects and mapping functions for
// offer persistence. The composite unique index on (shipment_id, courier_id)
// is the store-level guarantee that a courier offers on a shipment only once.
package offerrepo

import (
	"time"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/offer"

	"github.com/google/uuid"
)

// OfferDTO represents the database structure for persisting offers.
type OfferDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_offers_shipment_courier"`
	CourierID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_offers_shipment_courier"`
	Message    string
	Status     int
	CreatedAt  time.Time
}

// TableName specifies the database table name for offer entities.
func (OfferDTO) TableName() string {
	return "offers"
}

func fromDomain(entity *offer.Offer) OfferDTO {
	return OfferDTO{
		ID:         entity.ID().Bytes(),
		ShipmentID: entity.Shipment().Bytes(),
		CourierID:  entity.Courier().Bytes(),
		Message:    entity.Message(),
		Status:     int(entity.Status()),
		CreatedAt:  entity.CreatedAt(),
	}
}

func toDomain(dto OfferDTO) (*offer.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	return offer.RestoreOffer(id, shipmentID, courierID, dto.Message, offer.Status(dto.Status), dto.CreatedAt)
}
