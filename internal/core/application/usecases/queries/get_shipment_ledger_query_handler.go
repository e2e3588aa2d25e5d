package queries

import (
	"context"
	"database/sql"

	"parcelmatch/internal/core/domain/model/escrow"
	"parcelmatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentLedgerQueryHandler reads a shipment's escrow rows from the database.
type GetShipmentLedgerQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentLedgerQueryHandler creates a handler for ledger queries.
func NewGetShipmentLedgerQueryHandler(db *gorm.DB) GetShipmentLedgerQueryHandler {
	return GetShipmentLedgerQueryHandler{db: db}
}

// Handle returns the shipment's ledger entries, oldest first.
func (h GetShipmentLedgerQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentLedgerQuery,
) ([]GetShipmentLedgerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ledger := make([]GetShipmentLedgerQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			amount,
			currency,
			status,
			payer_id,
			payee_id,
			created_at,
			settled_at
		FROM transactions
		WHERE shipment_id = ?
		ORDER BY created_at, id
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp                 GetShipmentLedgerQueryResponse
			id, payerID, payeeID uuid.UUID
			amount               int64
			currency             string
			status               int
			settledAt            sql.NullTime
		)

		err = rows.Scan(&id, &amount, &currency, &status, &payerID, &payeeID, &resp.CreatedAt, &settledAt)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.PayerID, err = kernel.UUIDFromBytes(payerID[:]); err != nil {
			return nil, err
		}
		if resp.PayeeID, err = kernel.UUIDFromBytes(payeeID[:]); err != nil {
			return nil, err
		}
		if resp.Amount, err = kernel.NewMoney(amount, currency); err != nil {
			return nil, err
		}

		resp.Status = escrow.Status(status)
		if err = resp.Status.Validate(); err != nil {
			return nil, err
		}

		if settledAt.Valid {
			ts := settledAt.Time
			resp.SettledAt = &ts
		}

		ledger = append(ledger, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ledger, nil
}
