package ports

import (
	"context"

	"parcelmatch/internal/core/domain/model/escrow"
	"parcelmatch/internal/core/domain/model/kernel"
)

// TransactionRepository defines the persistence contract for escrow ledger
// entries. Settled rows are retained for audit; a shipment can accumulate
// several refunded rows over repeated hold cycles but at most one held row.
type TransactionRepository interface {
	// Add persists a new ledger entry. The store enforces at most one Held
	// entry per shipment; a duplicate surfaces as an errs.ConflictError.
	Add(ctx context.Context, entity *escrow.Transaction) error

	// Update persists changes to an existing ledger entry.
	Update(ctx context.Context, entity *escrow.Transaction) error

	// GetHeldByShipment retrieves the shipment's currently held entry.
	// Returns an errs.ObjectNotFoundError when no entry is currently held.
	GetHeldByShipment(ctx context.Context, shipmentID kernel.UUID) (*escrow.Transaction, error)

	// GetAllByShipment retrieves the full ledger history of a shipment,
	// oldest first.
	GetAllByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*escrow.Transaction, error)
}
