// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. It implements the repository pattern for the
// shipment aggregate, converting between domain entities and database rows.
package shipmentrepo

import (
	"time"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Both confirmation gates are stored as flat boolean columns so
// a single row update advances a gate.
type ShipmentDTO struct {
	ID                       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SenderID                 uuid.UUID  `gorm:"type:uuid;index"`
	CourierID                *uuid.UUID `gorm:"type:uuid;index"`
	Origin                   string
	Destination              string
	WeightGrams              int
	Content                  string
	PriceAmount              int64
	PriceCurrency            string `gorm:"type:varchar(3)"`
	Status                   int    `gorm:"index"`
	SenderConfirmedHandover  bool
	CourierConfirmedHandover bool
	SenderConfirmedDelivery  bool
	CourierConfirmedDelivery bool
	HandoverConfirmedAt      *time.Time
	DeliveryConfirmedAt      *time.Time
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return ShipmentDTO{
		ID:                       aggregate.ID().Bytes(),
		SenderID:                 aggregate.Sender().Bytes(),
		CourierID:                courierID,
		Origin:                   aggregate.Origin(),
		Destination:              aggregate.Destination(),
		WeightGrams:              aggregate.WeightGrams(),
		Content:                  aggregate.Content(),
		PriceAmount:              aggregate.Price().Amount(),
		PriceCurrency:            aggregate.Price().Currency(),
		Status:                   int(aggregate.Status()),
		SenderConfirmedHandover:  aggregate.SenderConfirmedHandover(),
		CourierConfirmedHandover: aggregate.CourierConfirmedHandover(),
		SenderConfirmedDelivery:  aggregate.SenderConfirmedDelivery(),
		CourierConfirmedDelivery: aggregate.CourierConfirmedDelivery(),
		HandoverConfirmedAt:      aggregate.HandoverConfirmedAt(),
		DeliveryConfirmedAt:      aggregate.DeliveryConfirmedAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	price, err := kernel.NewMoney(dto.PriceAmount, dto.PriceCurrency)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		senderID,
		courierID,
		dto.Origin,
		dto.Destination,
		dto.WeightGrams,
		dto.Content,
		price,
		shipment.Status(dto.Status),
		dto.SenderConfirmedHandover,
		dto.CourierConfirmedHandover,
		dto.SenderConfirmedDelivery,
		dto.CourierConfirmedDelivery,
		dto.HandoverConfirmedAt,
		dto.DeliveryConfirmedAt,
	)
}
