package queries

import (
	"context"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/offer"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentOffersQueryHandler reads a shipment's offer rows from the database.
type GetShipmentOffersQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentOffersQueryHandler creates a handler for shipment offer queries.
func NewGetShipmentOffersQueryHandler(db *gorm.DB) GetShipmentOffersQueryHandler {
	return GetShipmentOffersQueryHandler{db: db}
}

// Handle returns the shipment's offers, oldest first. A shipment with no
// offers yields an empty slice, not an error.
func (h GetShipmentOffersQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentOffersQuery,
) ([]GetShipmentOffersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	offers := make([]GetShipmentOffersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			courier_id,
			message,
			status,
			created_at
		FROM offers
		WHERE shipment_id = ?
		ORDER BY created_at, id
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp          GetShipmentOffersQueryResponse
			id, courierID uuid.UUID
			status        int
		)

		err = rows.Scan(&id, &courierID, &resp.Message, &status, &resp.CreatedAt)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CourierID, err = kernel.UUIDFromBytes(courierID[:]); err != nil {
			return nil, err
		}

		resp.Status = offer.Status(status)
		if err = resp.Status.Validate(); err != nil {
			return nil, err
		}

		offers = append(offers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return offers, nil
}
