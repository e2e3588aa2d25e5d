package queries

import (
	"context"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/offer"
	"parcelmatch/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenShipmentsQueryHandler reads the open-shipment board from the
// database, with the count of pending offers folded in per row.
type GetOpenShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenShipmentsQueryHandler creates a handler for open-shipment board queries.
func NewGetOpenShipmentsQueryHandler(db *gorm.DB) GetOpenShipmentsQueryHandler {
	return GetOpenShipmentsQueryHandler{db: db}
}

// Handle returns every Open shipment, oldest offer board entry first.
func (h GetOpenShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetOpenShipmentsQuery,
) ([]GetOpenShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	board := make([]GetOpenShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.sender_id,
			s.origin,
			s.destination,
			s.weight_grams,
			s.content,
			s.price_amount,
			s.price_currency,
			COUNT(o.id) FILTER (WHERE o.status = ?) AS pending_offers
		FROM shipments s
		LEFT JOIN offers o ON o.shipment_id = s.id
		WHERE s.status = ?
		GROUP BY s.id
		ORDER BY s.id
	`, offer.Pending, shipment.Open).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, senderID uuid.UUID
			resp         GetOpenShipmentsQueryResponse
			amount       int64
			currency     string
		)

		err = rows.Scan(
			&id,
			&senderID,
			&resp.Origin,
			&resp.Destination,
			&resp.WeightGrams,
			&resp.Content,
			&amount,
			&currency,
			&resp.PendingOffers,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.SenderID, err = kernel.UUIDFromBytes(senderID[:]); err != nil {
			return nil, err
		}
		if resp.Price, err = kernel.NewMoney(amount, currency); err != nil {
			return nil, err
		}

		board = append(board, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}
