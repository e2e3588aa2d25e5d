package queries

import (
	"context"
	"database/sql"
	"errors"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/shipment"
	"parcelmatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentQueryHandler reads a single shipment row from the database.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for single-shipment queries.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle returns the shipment's read model, or an errs.ObjectNotFoundError
// when no such shipment exists.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (*GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sender_id,
			courier_id,
			origin,
			destination,
			weight_grams,
			content,
			price_amount,
			price_currency,
			status,
			sender_confirmed_handover,
			courier_confirmed_handover,
			sender_confirmed_delivery,
			courier_confirmed_delivery,
			handover_confirmed_at,
			delivery_confirmed_at
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Row()

	var (
		resp      GetShipmentQueryResponse
		id        uuid.UUID
		senderID  uuid.UUID
		courierID uuid.NullUUID
		amount    int64
		currency  string
		status    int
		handover  sql.NullTime
		delivery  sql.NullTime
	)

	err := row.Scan(
		&id,
		&senderID,
		&courierID,
		&resp.Origin,
		&resp.Destination,
		&resp.WeightGrams,
		&resp.Content,
		&amount,
		&currency,
		&status,
		&resp.SenderConfirmedHandover,
		&resp.CourierConfirmedHandover,
		&resp.SenderConfirmedDelivery,
		&resp.CourierConfirmedDelivery,
		&handover,
		&delivery,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("shipmentID", query.ShipmentID())
	}
	if err != nil {
		return nil, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return nil, err
	}
	if resp.SenderID, err = kernel.UUIDFromBytes(senderID[:]); err != nil {
		return nil, err
	}
	if courierID.Valid {
		courier, idErr := kernel.UUIDFromBytes(courierID.UUID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.CourierID = &courier
	}
	if resp.Price, err = kernel.NewMoney(amount, currency); err != nil {
		return nil, err
	}

	resp.Status = shipment.Status(status)
	if err = resp.Status.Validate(); err != nil {
		return nil, err
	}

	if handover.Valid {
		ts := handover.Time
		resp.HandoverConfirmedAt = &ts
	}
	if delivery.Valid {
		ts := delivery.Time
		resp.DeliveryConfirmedAt = &ts
	}

	return &resp, nil
}
