package queries

import (
	"errors"
	"time"

	"parcelmatch/internal/core/domain/model/escrow"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/guard"
)

var ErrGetShipmentLedgerQueryIsNotConstructed = errors.New(
	"GetShipmentLedgerQuery must be created via NewGetShipmentLedgerQuery constructor",
)

// GetShipmentLedgerQuery retrieves a shipment's full escrow history. A
// shipment that went through several hold/refund cycles has one row per
// cycle; this is the audit trail.
type GetShipmentLedgerQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentLedgerQuery creates a query for a shipment's ledger.
func NewGetShipmentLedgerQuery(shipmentID kernel.UUID) (GetShipmentLedgerQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentLedgerQuery{}, err
	}

	return GetShipmentLedgerQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// ShipmentID returns the shipment whose ledger is requested.
func (q GetShipmentLedgerQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentLedgerQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentLedgerQueryIsNotConstructed)
}

// GetShipmentLedgerQueryResponse is one escrow ledger row.
type GetShipmentLedgerQueryResponse struct {
	ID        kernel.UUID
	Amount    kernel.Money
	Status    escrow.Status
	PayerID   kernel.UUID
	PayeeID   kernel.UUID
	CreatedAt time.Time
	SettledAt *time.Time
}
